package generation

import (
	"context"

	"google.golang.org/genai"
)

// ModelClient is the boundary between the application and the remote
// generative model. Implementations perform exactly one request per call and
// do not retry.
type ModelClient interface {
	// GenerateText sends prompt to the text model. When schema is non-nil the
	// model is asked for JSON conforming to it.
	GenerateText(ctx context.Context, prompt string, schema *genai.Schema) (*RawResponse, error)

	// GenerateImage sends prompt to the image model.
	GenerateImage(ctx context.Context, prompt string) (*RawResponse, error)
}

// RawResponse is the provider-neutral shape of a model answer.
type RawResponse struct {
	// Text is the concatenated text of the first candidate, empty if none.
	Text string

	// Parts are the content parts of the first candidate, in order.
	Parts []RawPart

	// FinishReason is the provider's stop reason, if reported.
	FinishReason string
}

// RawPart is one content fragment. A part carrying Data is an inline binary
// payload described by MIMEType.
type RawPart struct {
	Text     string
	MIMEType string
	Data     []byte
}

// IsInlineData reports whether p carries inline binary data with a MIME type.
// An inline part with an empty payload does not count as an image.
func (p RawPart) IsInlineData() bool {
	return len(p.Data) > 0 && p.MIMEType != ""
}
