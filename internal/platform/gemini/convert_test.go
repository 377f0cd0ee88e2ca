package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToRawResponse(t *testing.T) {
	t.Parallel()

	t.Run("nil and empty responses", func(t *testing.T) {
		t.Parallel()
		for _, resp := range []*genai.GenerateContentResponse{
			nil,
			{},
			{Candidates: []*genai.Candidate{nil}},
			{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
		} {
			raw := toRawResponse(resp)
			require.NotNil(t, raw)
			assert.Empty(t, raw.Text)
			assert.Empty(t, raw.Parts)
		}
	})

	t.Run("keeps finish reason without content", func(t *testing.T) {
		t.Parallel()
		raw := toRawResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		})
		assert.Equal(t, string(genai.FinishReasonSafety), raw.FinishReason)
	})

	t.Run("concatenates text and skips thoughts", func(t *testing.T) {
		t.Parallel()
		raw := toRawResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{
					{Text: "planning the answer", Thought: true},
					{Text: "# Title\n"},
					nil,
					{Text: "Body"},
				}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "second candidate"}}}},
			},
		})
		assert.Equal(t, "# Title\nBody", raw.Text)
		require.Len(t, raw.Parts, 2)
	})

	t.Run("preserves inline data order", func(t *testing.T) {
		t.Parallel()
		raw := toRawResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte{1, 2}}},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{3}}},
				{InlineData: &genai.Blob{MIMEType: "image/png"}},
			}}}},
		})
		require.Len(t, raw.Parts, 2)
		assert.Equal(t, "image/jpeg", raw.Parts[0].MIMEType)
		assert.True(t, raw.Parts[0].IsInlineData())
		assert.Equal(t, []byte{3}, raw.Parts[1].Data)
	})
}
