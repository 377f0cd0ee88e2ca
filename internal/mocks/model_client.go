package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/teachkit/internal/generation"
	"google.golang.org/genai"
)

// ModelClientCalls is a snapshot of the calls a MockModelClient received.
type ModelClientCalls struct {
	// Text counts GenerateText calls
	Text int

	// Image counts GenerateImage calls
	Image int

	// Prompts holds every prompt in call order, across both methods
	Prompts []string

	// Schemas holds the schema passed to each GenerateText call
	Schemas []*genai.Schema
}

// MockModelClient implements generation.ModelClient for testing
type MockModelClient struct {
	// GenerateTextFn overrides GenerateText when set
	GenerateTextFn func(ctx context.Context, prompt string, schema *genai.Schema) (*generation.RawResponse, error)

	// GenerateImageFn overrides GenerateImage when set
	GenerateImageFn func(ctx context.Context, prompt string) (*generation.RawResponse, error)

	// Default response values
	Response *generation.RawResponse
	Err      error

	mu    sync.Mutex
	calls ModelClientCalls
}

var _ generation.ModelClient = (*MockModelClient)(nil)

// GenerateText implements generation.ModelClient
func (m *MockModelClient) GenerateText(
	ctx context.Context,
	prompt string,
	schema *genai.Schema,
) (*generation.RawResponse, error) {
	m.mu.Lock()
	m.calls.Text++
	m.calls.Prompts = append(m.calls.Prompts, prompt)
	m.calls.Schemas = append(m.calls.Schemas, schema)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt, schema)
	}
	return m.Response, m.Err
}

// GenerateImage implements generation.ModelClient
func (m *MockModelClient) GenerateImage(ctx context.Context, prompt string) (*generation.RawResponse, error) {
	m.mu.Lock()
	m.calls.Image++
	m.calls.Prompts = append(m.calls.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return m.Response, m.Err
}

// Calls returns a copy of the recorded calls
func (m *MockModelClient) Calls() ModelClientCalls {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := ModelClientCalls{Text: m.calls.Text, Image: m.calls.Image}
	out.Prompts = append(out.Prompts, m.calls.Prompts...)
	out.Schemas = append(out.Schemas, m.calls.Schemas...)
	return out
}

// TotalCalls returns the number of calls across both methods
func (m *MockModelClient) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Text + m.calls.Image
}

// Reset clears the call tracking state
func (m *MockModelClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = ModelClientCalls{}
}

// NewMockModelClientWithText creates a MockModelClient that answers with text
func NewMockModelClientWithText(text string) *MockModelClient {
	return &MockModelClient{Response: &generation.RawResponse{
		Text:  text,
		Parts: []generation.RawPart{{Text: text}},
	}}
}

// NewMockModelClientWithImage creates a MockModelClient that answers with one
// inline image part
func NewMockModelClientWithImage(mimeType string, data []byte) *MockModelClient {
	return &MockModelClient{Response: &generation.RawResponse{
		Parts: []generation.RawPart{{MIMEType: mimeType, Data: data}},
	}}
}

// NewMockModelClientWithError creates a MockModelClient that fails every call
func NewMockModelClientWithError(err error) *MockModelClient {
	return &MockModelClient{Err: err}
}
