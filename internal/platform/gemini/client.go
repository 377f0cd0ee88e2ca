package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/teachkit/internal/config"
	"github.com/phrazzld/teachkit/internal/generation"
	"github.com/phrazzld/teachkit/internal/redact"
	"google.golang.org/genai"
)

// JSONMIMEType is the response MIME type requested for schema-constrained calls.
const JSONMIMEType = "application/json"

// contentGenerator is the subset of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client implements generation.ModelClient using the Gemini API.
type Client struct {
	logger     *slog.Logger
	models     contentGenerator
	textModel  string
	imageModel string
}

var _ generation.ModelClient = (*Client)(nil)

// NewClient creates a Client authenticated with the configured API key.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if err := validateConfig(logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return newClient(logger, client.Models, cfg), nil
}

func newClient(logger *slog.Logger, models contentGenerator, cfg config.LLMConfig) *Client {
	return &Client{
		logger:     logger.With("component", "gemini"),
		models:     models,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}
}

func validateConfig(logger *slog.Logger, cfg config.LLMConfig) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.TextModel == "" {
		return fmt.Errorf("%w: text model cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModel == "" {
		return fmt.Errorf("%w: image model cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}

// GenerateText implements generation.ModelClient.
func (c *Client) GenerateText(
	ctx context.Context,
	prompt string,
	schema *genai.Schema,
) (*generation.RawResponse, error) {
	var cfg *genai.GenerateContentConfig
	if schema != nil {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: JSONMIMEType,
			ResponseSchema:   schema,
		}
	}
	return c.generate(ctx, c.textModel, prompt, cfg)
}

// GenerateImage implements generation.ModelClient.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*generation.RawResponse, error) {
	return c.generate(ctx, c.imageModel, prompt, nil)
}

func (c *Client) generate(
	ctx context.Context,
	model string,
	prompt string,
	cfg *genai.GenerateContentConfig,
) (*generation.RawResponse, error) {
	c.logger.DebugContext(ctx, "calling Gemini API",
		"model", model,
		"prompt_length", len(prompt),
		"structured", cfg != nil && cfg.ResponseSchema != nil)

	started := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", model,
			"duration_ms", time.Since(started).Milliseconds(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("%w: %s request failed: %s",
			generation.ErrGenerationFailed, model, redact.Error(err))
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %s returned a nil response", generation.ErrGenerationFailed, model)
	}

	raw := toRawResponse(resp)
	attrs := []any{
		"model", model,
		"duration_ms", time.Since(started).Milliseconds(),
		"candidates", len(resp.Candidates),
		"parts", len(raw.Parts),
	}
	if raw.FinishReason != "" {
		attrs = append(attrs, "finish_reason", raw.FinishReason)
	}
	if resp.UsageMetadata != nil {
		attrs = append(attrs, "total_tokens", resp.UsageMetadata.TotalTokenCount)
	}
	c.logger.DebugContext(ctx, "Gemini API call completed", attrs...)

	return raw, nil
}
