package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"weighbridge/internal/config"
	"weighbridge/internal/handler"
	"weighbridge/internal/middleware"
)

// Options carries optional router features.
type Options struct {
	CORSOrigins []string
	// MetricsHandler is mounted at MetricsPath when non-nil.
	MetricsHandler http.Handler
	MetricsPath    string
	Swagger        bool
}

// OptionsFromConfig derives router options from configuration.
func OptionsFromConfig(cfg *config.Config, metrics http.Handler) Options {
	opts := Options{
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Swagger:     cfg.Server.Environment != "production",
	}
	if cfg.Metrics.Enabled {
		opts.MetricsHandler = metrics
		opts.MetricsPath = cfg.Metrics.Path
	}
	return opts
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	ocrH *handler.OCRHandler,
	healthH *handler.HealthHandler,
	opts Options,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery(func(c *gin.Context) {
		handler.RespondError(c, http.StatusInternalServerError, handler.CodeInternal, handler.MsgInternal)
	}))
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound, handler.CodeNotFound, handler.MsgNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handler.RespondError(c, http.StatusMethodNotAllowed, handler.CodeMethodNotAllowed, handler.MsgMethodNotAllowed)
	})

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(opts.MetricsHandler))
	}
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	ocr := v1.Group("/ocr")
	ocr.POST("/upload-ocr", ocrH.UploadOCR)
	ocr.POST("/parse", ocrH.Parse)
	ocr.POST("/export/csv", ocrH.ExportCSV)
	ocr.POST("/export/json", ocrH.ExportJSON)
	ocr.POST("/export/xlsx", ocrH.ExportXLSX)

	return r
}
