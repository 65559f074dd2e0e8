package main

import (
	"os"

	"github.com/spf13/cobra"

	"weighbridge/internal/config"
	"weighbridge/internal/logger"
)

func main() {
	var logLevel string
	var root = &cobra.Command{
		Use:          "ticketctl",
		Short:        "Parse weighbridge OCR results offline",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(config.LogConfig{Level: logLevel, Format: "text"})
			logger.SetOutput(os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(parseCMD(), lexiconCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
