package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/teachkit/internal/generation"
)

// User-facing failure messages per operation.
const (
	MsgLessonPlanFailed = "Failed to generate lesson plan. Please try again."
	MsgQuizFailed       = "Failed to generate quiz."
	MsgImageFailed      = "Failed to generate visual aid."
	MsgTimeout          = "The request took too long. Please try again."
	MsgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes. Remote
// failures are reported as 502 since the fault lies with the upstream model.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrNoImageData),
		errors.Is(err, generation.ErrInconsistentQuiz):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the user when op fails
// with err. Input errors are echoed without the sentinel prefix since they
// only describe the request itself; everything else gets the generic
// per-operation message.
func GetSafeErrorMessage(op string, err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), generation.ErrInvalidInput.Error()+": ")
		return "Invalid request: " + msg
	case errors.Is(err, generation.ErrTimeout):
		return MsgTimeout
	}

	switch op {
	case generation.OpLessonPlan:
		return MsgLessonPlanFailed
	case generation.OpQuiz:
		return MsgQuizFailed
	case generation.OpImage:
		return MsgImageFailed
	default:
		return MsgUnexpected
	}
}

// SanitizeValidationError turns a validator error into a short message that
// names the first offending JSON field.
func SanitizeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe.Field()), getValidationTagMessage(fe.Tag(), fe.Param()))
	}
	return "Validation error"
}

// jsonFieldName lower-cases the first letter of a Go field name, which is
// how the request DTOs name their JSON keys.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		return "validation failed"
	}
}
