package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/teachkit/internal/domain"
	"github.com/phrazzld/teachkit/internal/redact"
)

// Operation names used in logs and error messages.
const (
	OpLessonPlan = "lesson_plan"
	OpQuiz       = "quiz"
	OpImage      = "image"
)

// LessonPlanRequest holds the parameters of a lesson-plan generation.
type LessonPlanRequest struct {
	Topic           string
	Grade           domain.GradeLevel
	DurationMinutes int
}

// QuizRequest holds the parameters of a quiz generation.
type QuizRequest struct {
	Topic         string
	Grade         domain.GradeLevel
	QuestionCount int
}

// ImageRequest holds the parameters of an image generation.
type ImageRequest struct {
	Description string
}

// Options tune the service beyond the plain request/response pipeline.
type Options struct {
	// Timeout bounds each model call. Zero waits for as long as the remote
	// service takes.
	Timeout time.Duration

	// StrictQuiz rejects quizzes whose correct answer is not one of the options.
	StrictQuiz bool
}

// Service runs the build, call and decode steps for each operation.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	client ModelClient
	logger *slog.Logger
	opts   Options
}

// NewService creates a Service on top of client.
func NewService(client ModelClient, logger *slog.Logger, opts Options) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: model client cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", ErrInvalidConfig)
	}
	if opts.Timeout < 0 {
		return nil, fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}
	return &Service{client: client, logger: logger, opts: opts}, nil
}

// LessonPlan generates a Markdown lesson plan. An empty model answer yields
// NoContentText rather than an error.
func (s *Service) LessonPlan(ctx context.Context, req LessonPlanRequest) (string, error) {
	prompt, err := BuildLessonPlanPrompt(req.Topic, req.Grade, req.DurationMinutes)
	if err != nil {
		return "", err
	}

	raw, err := s.call(ctx, OpLessonPlan, func(ctx context.Context) (*RawResponse, error) {
		return s.client.GenerateText(ctx, prompt, nil)
	})
	if err != nil {
		return "", err
	}

	text := DecodeText(raw)
	s.logger.InfoContext(ctx, "lesson plan generated",
		"grade", req.Grade.Code(),
		"duration_minutes", req.DurationMinutes,
		"text_length", len(text))
	return text, nil
}

// Quiz generates a structured multiple-choice quiz.
func (s *Service) Quiz(ctx context.Context, req QuizRequest) (domain.QuizData, error) {
	prompt, schema, err := BuildQuizPrompt(req.Topic, req.Grade, req.QuestionCount)
	if err != nil {
		return domain.QuizData{}, err
	}

	raw, err := s.call(ctx, OpQuiz, func(ctx context.Context) (*RawResponse, error) {
		return s.client.GenerateText(ctx, prompt, schema)
	})
	if err != nil {
		return domain.QuizData{}, err
	}

	quiz, err := DecodeQuiz(raw)
	if err != nil {
		s.logFailure(ctx, OpQuiz, err)
		return domain.QuizData{}, err
	}

	if s.opts.StrictQuiz {
		if err := quiz.Validate(); err != nil {
			s.logFailure(ctx, OpQuiz, err)
			return domain.QuizData{}, err
		}
	}

	s.logger.InfoContext(ctx, "quiz generated",
		"grade", req.Grade.Code(),
		"requested_questions", req.QuestionCount,
		"received_questions", len(quiz.Questions))
	return quiz, nil
}

// Image generates an educational illustration.
func (s *Service) Image(ctx context.Context, req ImageRequest) (domain.ImageRef, error) {
	prompt, err := BuildImagePrompt(req.Description)
	if err != nil {
		return domain.ImageRef{}, err
	}

	raw, err := s.call(ctx, OpImage, func(ctx context.Context) (*RawResponse, error) {
		return s.client.GenerateImage(ctx, prompt)
	})
	if err != nil {
		return domain.ImageRef{}, err
	}

	image, err := DecodeImage(raw)
	if err != nil {
		s.logFailure(ctx, OpImage, err)
		return domain.ImageRef{}, err
	}

	s.logger.InfoContext(ctx, "image generated",
		"mime_type", image.MIMEType,
		"size_bytes", len(image.Data))
	return image, nil
}

// call performs the single model round trip, applying the optional timeout.
func (s *Service) call(
	ctx context.Context,
	op string,
	fn func(ctx context.Context) (*RawResponse, error),
) (*RawResponse, error) {
	callCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := fn(callCtx)
	if err != nil {
		if s.opts.Timeout > 0 && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w: no answer after %s: %v", ErrTimeout, s.opts.Timeout, err)
		} else if !errors.Is(err, ErrGenerationFailed) {
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		s.logFailure(ctx, op, err)
		return nil, err
	}

	s.logger.DebugContext(ctx, "model call completed",
		"operation", op,
		"duration_ms", time.Since(started).Milliseconds())
	return raw, nil
}

func (s *Service) logFailure(ctx context.Context, op string, err error) {
	s.logger.ErrorContext(ctx, "generation failed",
		"operation", op,
		"error", redact.Error(err))
}
