package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Upload  UploadConfig
	NER     NERConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UploadConfig bounds OCR result uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// NERConfig controls the organization-name recognizer used as the last
// company-name fallback. An empty LexiconPath selects the built-in lexicon.
type NERConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	LexiconPath string `mapstructure:"lexicon_path"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the WEIGHBRIDGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WEIGHBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("upload.max_file_size_mb", 10)

	v.SetDefault("ner.enabled", true)
	v.SetDefault("ner.lexicon_path", "")

	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "WEIGHBRIDGE_SERVER_PORT",
		"server.read_timeout":     "WEIGHBRIDGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "WEIGHBRIDGE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "WEIGHBRIDGE_SERVER_ENVIRONMENT",
		"log.level":               "WEIGHBRIDGE_LOG_LEVEL",
		"log.format":              "WEIGHBRIDGE_LOG_FORMAT",
		"upload.max_file_size_mb": "WEIGHBRIDGE_UPLOAD_MAX_FILE_SIZE_MB",
		"ner.enabled":             "WEIGHBRIDGE_NER_ENABLED",
		"ner.lexicon_path":        "WEIGHBRIDGE_NER_LEXICON_PATH",
		"cors.allowed_origins":    "WEIGHBRIDGE_CORS_ALLOWED_ORIGINS",
		"metrics.enabled":         "WEIGHBRIDGE_METRICS_ENABLED",
		"metrics.path":            "WEIGHBRIDGE_METRICS_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if WEIGHBRIDGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WEIGHBRIDGE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.NER = NERConfig{
		Enabled:     v.GetBool("ner.enabled"),
		LexiconPath: v.GetString("ner.lexicon_path"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
