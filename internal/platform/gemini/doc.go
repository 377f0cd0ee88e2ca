// Package gemini implements generation.ModelClient on top of Google's Gemini
// API through the google.golang.org/genai SDK.
//
// A Client sends one GenerateContent request per call: text prompts go to the
// configured text model, optionally constrained to a JSON response schema, and
// image prompts go to the image model. Responses are converted to the
// provider-neutral generation.RawResponse so decoding stays independent of the
// SDK. The client never retries and never parses payloads itself.
package gemini
