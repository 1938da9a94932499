// Package main is the entry point for the BioLens specimen viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/app"
	"github.com/omaressa123/RAG-BioL/internal/config"
	"github.com/omaressa123/RAG-BioL/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== BioLens Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("application error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
