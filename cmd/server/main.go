// Package main runs the classroom content generation server: an HTTP API
// that produces lesson plans, quizzes and visual aids through the Gemini API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/phrazzld/teachkit/internal/config"
	"github.com/phrazzld/teachkit/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves until the
// process is interrupted.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"image_model", cfg.LLM.ImageModel,
		"request_timeout", cfg.LLM.RequestTimeout.String(),
		"strict_quiz", cfg.LLM.StrictQuiz)

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", cfg.Server.Port, err)
	}

	return app.serve(ctx, ln)
}
