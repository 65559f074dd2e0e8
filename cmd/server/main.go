package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	_ "weighbridge/docs"
	"weighbridge/internal/config"
	"weighbridge/internal/handler"
	"weighbridge/internal/logger"
	"weighbridge/internal/metrics"
	"weighbridge/internal/ner"
	"weighbridge/internal/parser"
	"weighbridge/internal/router"
	"weighbridge/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Log)

	// Initialize parser dependencies
	rec := metrics.NewRecorder()
	parserOpts := []parser.Option{parser.WithRecorder(rec)}
	var nerStatus handler.RecognizerStatus
	if cfg.NER.Enabled {
		recognizer := ner.NewLazy(cfg.NER.LexiconPath)
		// A failed load is logged and leaves company extraction on labels and patterns.
		_ = recognizer.Warm()
		parserOpts = append(parserOpts, parser.WithRecognizer(recognizer))
		nerStatus = recognizer
	}

	// Initialize services
	ticketSvc := service.NewTicketService(parser.New(parserOpts...), cfg.Upload.MaxBytes())

	// Initialize handlers
	ocrH := handler.NewOCRHandler(ticketSvc)
	healthH := handler.NewHealthHandler(nerStatus)

	// Setup router
	r := router.Setup(ocrH, healthH, router.OptionsFromConfig(cfg, rec.Handler()))

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.WithFields(logrus.Fields{
			"address":     cfg.Server.Port,
			"environment": cfg.Server.Environment,
			"ner":         cfg.NER.Enabled,
		}).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Logger.Info("Server exited")
	return nil
}
