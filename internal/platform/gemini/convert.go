package gemini

import (
	"strings"

	"github.com/phrazzld/teachkit/internal/generation"
	"google.golang.org/genai"
)

// toRawResponse flattens the first candidate of resp. Thought parts are
// skipped; text parts are concatenated in order into Text.
func toRawResponse(resp *genai.GenerateContentResponse) *generation.RawResponse {
	raw := &generation.RawResponse{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return raw
	}

	candidate := resp.Candidates[0]
	raw.FinishReason = string(candidate.FinishReason)
	if candidate.Content == nil {
		return raw
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}

		var out generation.RawPart
		if part.InlineData != nil {
			out.MIMEType = part.InlineData.MIMEType
			out.Data = part.InlineData.Data
		}
		if part.Text != "" {
			out.Text = part.Text
			text.WriteString(part.Text)
		}
		if out.Text == "" && len(out.Data) == 0 {
			continue
		}
		raw.Parts = append(raw.Parts, out)
	}
	raw.Text = text.String()

	return raw
}
