// Package api exposes the generation service over HTTP. Handlers decode and
// validate JSON requests, run one generation per request through a
// domain.GenerationState, and render either the settled Result or a
// sanitized error carrying the request's trace id.
package api
