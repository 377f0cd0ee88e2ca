package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/teachkit/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", fmt.Errorf("%w: topic cannot be empty", generation.ErrInvalidInput), http.StatusBadRequest},
		{"timeout", fmt.Errorf("%w: no answer after 1s", generation.ErrTimeout), http.StatusGatewayTimeout},
		{"generation failed", fmt.Errorf("%w: 500", generation.ErrGenerationFailed), http.StatusBadGateway},
		{"empty response", generation.ErrEmptyResponse, http.StatusBadGateway},
		{"no image data", fmt.Errorf("%w (finish reason: SAFETY)", generation.ErrNoImageData), http.StatusBadGateway},
		{"inconsistent quiz", fmt.Errorf("question 1: %w", generation.ErrInconsistentQuiz), http.StatusBadGateway},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	upstream := fmt.Errorf("%w: 403 key=secret-value-123", generation.ErrGenerationFailed)

	tests := []struct {
		name     string
		op       string
		err      error
		expected string
	}{
		{"nil error", generation.OpQuiz, nil, MsgUnexpected},
		{"lesson plan", generation.OpLessonPlan, upstream, MsgLessonPlanFailed},
		{"quiz", generation.OpQuiz, upstream, MsgQuizFailed},
		{"image", generation.OpImage, generation.ErrNoImageData, MsgImageFailed},
		{"unknown operation", "summary", upstream, MsgUnexpected},
		{"timeout", generation.OpImage, generation.ErrTimeout, MsgTimeout},
		{
			"invalid input is echoed",
			generation.OpLessonPlan,
			fmt.Errorf("%w: duration 50 minutes is not one of [15 30 45 60 90]", generation.ErrInvalidInput),
			"Invalid request: duration 50 minutes is not one of [15 30 45 60 90]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := GetSafeErrorMessage(tt.op, tt.err)
			assert.Equal(t, tt.expected, msg)
			assert.NotContains(t, msg, "secret-value")
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.Struct(QuizRequest{Topic: "Cells", GradeLevel: "high", QuestionCount: 7})
	require.Error(t, err)
	assert.Equal(t, "Invalid questionCount: must be one of 3, 5, 10", SanitizeValidationError(err))

	err = v.Struct(ImageRequest{})
	require.Error(t, err)
	assert.Equal(t, "Invalid description: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}
