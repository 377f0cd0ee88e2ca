package generation

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/teachkit/internal/domain"
)

// NoContentText is returned by DecodeText when the model produced no text.
const NoContentText = "No content generated."

// DecodeText returns the response text, or NoContentText when there is none.
// It never fails.
func DecodeText(raw *RawResponse) string {
	if raw == nil || raw.Text == "" {
		return NoContentText
	}
	return raw.Text
}

// quizPayload mirrors domain.QuizData with pointer fields so that missing
// keys can be told apart from empty values.
type quizPayload struct {
	Title     *string                `json:"title"`
	Questions *[]domain.QuizQuestion `json:"questions"`
}

// DecodeQuiz parses the response text as a QuizData. Both title and questions
// must be present. The answer/options invariant is not checked here.
func DecodeQuiz(raw *RawResponse) (domain.QuizData, error) {
	if raw == nil || raw.Text == "" {
		return domain.QuizData{}, ErrEmptyResponse
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(raw.Text), &payload); err != nil {
		return domain.QuizData{}, fmt.Errorf("%w: failed to parse quiz JSON: %v", ErrGenerationFailed, err)
	}
	if payload.Title == nil || payload.Questions == nil {
		return domain.QuizData{}, fmt.Errorf("%w: quiz JSON is missing title or questions", ErrGenerationFailed)
	}
	return domain.QuizData{Title: *payload.Title, Questions: *payload.Questions}, nil
}

// DecodeImage returns the first inline-data part of the response.
func DecodeImage(raw *RawResponse) (domain.ImageRef, error) {
	if raw == nil {
		return domain.ImageRef{}, ErrNoImageData
	}
	for _, part := range raw.Parts {
		if part.IsInlineData() {
			return domain.ImageRef{MIMEType: part.MIMEType, Data: part.Data}, nil
		}
	}
	if raw.FinishReason != "" {
		return domain.ImageRef{}, fmt.Errorf("%w (finish reason: %s)", ErrNoImageData, raw.FinishReason)
	}
	return domain.ImageRef{}, ErrNoImageData
}
