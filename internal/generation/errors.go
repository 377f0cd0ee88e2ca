package generation

import (
	"errors"

	"github.com/phrazzld/teachkit/internal/domain"
)

// Common errors returned by the generation package
var (
	// ErrInvalidInput is returned by the builders when a request parameter is
	// empty or outside its accepted set. Nothing is sent to the model.
	ErrInvalidInput = errors.New("invalid generation input")

	// ErrGenerationFailed is returned when the remote call fails or its payload
	// cannot be parsed.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrEmptyResponse is returned when the model answered without any text
	// where text was required.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrNoImageData is returned when an image response carries no inline image part.
	ErrNoImageData = errors.New("no image data found in response")

	// ErrTimeout is returned when a configured request timeout elapses before
	// the model answers.
	ErrTimeout = errors.New("generation timed out")

	// ErrInconsistentQuiz is returned in strict mode when a question's correct
	// answer is not among its options.
	ErrInconsistentQuiz = domain.ErrInconsistentQuiz

	// ErrInvalidConfig is returned when a client or service is constructed with
	// missing dependencies or settings.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
