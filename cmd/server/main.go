// Package main implements the entry point for the NurseNote API server,
// which turns psychiatric home-visit nursing notes into SOAP records and
// care plan drafts using an LLM provider.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the nursenote-api server.
// It loads configuration, sets up logging, builds the generator and
// services, and serves HTTP until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
