package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/teachkit/internal/api/shared"
	"github.com/phrazzld/teachkit/internal/domain"
	"github.com/phrazzld/teachkit/internal/generation"
)

// GenerationService is the part of *generation.Service the handlers use.
type GenerationService interface {
	LessonPlan(ctx context.Context, req generation.LessonPlanRequest) (string, error)
	Quiz(ctx context.Context, req generation.QuizRequest) (domain.QuizData, error)
	Image(ctx context.Context, req generation.ImageRequest) (domain.ImageRef, error)
}

// GenerationHandler handles the lesson-plan, quiz and visual-aid endpoints.
type GenerationHandler struct {
	service   GenerationService
	validator *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(service GenerationService, logger *slog.Logger) (*GenerationHandler, error) {
	if service == nil {
		return nil, errors.New("generation service cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &GenerationHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger.With("component", "generation_handler"),
		now:       time.Now,
	}, nil
}

// LessonPlan handles POST /api/lesson-plans requests
func (h *GenerationHandler) LessonPlan(w http.ResponseWriter, r *http.Request) {
	var req LessonPlanRequest
	if !h.decode(w, r, &req) {
		return
	}
	grade, ok := h.parseGrade(w, r, req.GradeLevel)
	if !ok {
		return
	}

	state := domain.NewGenerationState()
	state.Begin()

	text, err := h.service.LessonPlan(r.Context(), generation.LessonPlanRequest{
		Topic:           req.Topic,
		Grade:           grade,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		h.fail(w, r, state, generation.OpLessonPlan, err)
		return
	}
	h.succeed(w, r, state, domain.TextResult(text))
}

// Quiz handles POST /api/quizzes requests
func (h *GenerationHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if !h.decode(w, r, &req) {
		return
	}
	grade, ok := h.parseGrade(w, r, req.GradeLevel)
	if !ok {
		return
	}

	state := domain.NewGenerationState()
	state.Begin()

	quiz, err := h.service.Quiz(r.Context(), generation.QuizRequest{
		Topic:         req.Topic,
		Grade:         grade,
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		h.fail(w, r, state, generation.OpQuiz, err)
		return
	}
	h.succeed(w, r, state, domain.QuizResult(quiz))
}

// Image handles POST /api/images requests. With ?download=1 (or any value
// strconv.ParseBool accepts as true) the image bytes are sent as an attachment
// instead of a JSON result. Any other non-empty download value is a 400.
func (h *GenerationHandler) Image(w http.ResponseWriter, r *http.Request) {
	download, ok := parseDownload(w, r)
	if !ok {
		return
	}

	var req ImageRequest
	if !h.decode(w, r, &req) {
		return
	}

	state := domain.NewGenerationState()
	state.Begin()

	image, err := h.service.Image(r.Context(), generation.ImageRequest{Description: req.Description})
	if err != nil {
		h.fail(w, r, state, generation.OpImage, err)
		return
	}

	if !download {
		h.succeed(w, r, state, domain.ImageResult(image))
		return
	}

	if err := state.Succeed(domain.ImageResult(image)); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpected, err)
		return
	}
	settled, _ := state.Result().Image()
	shared.RespondWithAttachment(w, r, settled.MIMEType, h.downloadName(settled.MIMEType), settled.Data)
}

func parseDownload(w http.ResponseWriter, r *http.Request) (bool, bool) {
	value := r.URL.Query().Get("download")
	if value == "" {
		return false, true
	}
	download, err := strconv.ParseBool(value)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid download: must be true or false")
		return false, false
	}
	return download, true
}

// downloadName builds the attachment filename for an image.
func (h *GenerationHandler) downloadName(mimeType string) string {
	return fmt.Sprintf("tutor-aid-%d.%s", h.now().UnixMilli(), imageExtension(mimeType))
}

func imageExtension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}

// decode reads and validates the JSON body, writing a 400 response on failure.
func (h *GenerationHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := h.validator.Struct(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

func (h *GenerationHandler) parseGrade(w http.ResponseWriter, r *http.Request, value string) (domain.GradeLevel, bool) {
	grade, err := domain.ParseGradeLevel(value)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid gradeLevel: unknown grade level", err)
		return "", false
	}
	return grade, true
}

func (h *GenerationHandler) succeed(
	w http.ResponseWriter,
	r *http.Request,
	state *domain.GenerationState,
	result domain.Result,
) {
	if err := state.Succeed(result); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpected, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, state.Result())
}

func (h *GenerationHandler) fail(
	w http.ResponseWriter,
	r *http.Request,
	state *domain.GenerationState,
	op string,
	err error,
) {
	if stateErr := state.Fail(GetSafeErrorMessage(op, err)); stateErr != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpected, stateErr)
		return
	}
	h.logger.WarnContext(r.Context(), "generation request failed",
		"operation", op,
		"status_code", MapErrorToStatusCode(err))
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), state.Err(), err)
}
