package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/teachkit/internal/api"
	"github.com/phrazzld/teachkit/internal/config"
	"github.com/phrazzld/teachkit/internal/generation"
	"github.com/phrazzld/teachkit/internal/platform/gemini"
)

// application holds the wired dependencies of the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	handler *api.GenerationHandler
}

// newApplication connects to the Gemini API and wires the service stack.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	client, err := gemini.NewClient(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newApplicationWithClient(cfg, logger, client)
}

// newApplicationWithClient wires the service stack over an existing model client.
func newApplicationWithClient(
	cfg *config.Config,
	logger *slog.Logger,
	client generation.ModelClient,
) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	service, err := generation.NewService(client, logger, generation.Options{
		Timeout:    cfg.LLM.RequestTimeout,
		StrictQuiz: cfg.LLM.StrictQuiz,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	handler, err := api.NewGenerationHandler(service, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation handler: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  logger,
		handler: handler,
	}, nil
}
