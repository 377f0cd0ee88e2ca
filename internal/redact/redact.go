// Package redact removes credentials and other sensitive fragments from
// strings before they are logged. Errors coming back from the model API can
// echo the request URL, and with it the API key, so every error that reaches
// a log line goes through Error first.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

// rule pairs a pattern with its replacement. Replacements may reference
// capture groups with ${n}.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order. Keys are matched before the generic
// key=value form so a bare key embedded in prose is still caught.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: RedactedStackPlaceholder,
	},
	{
		// Google API keys
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)(api[_-]?key|bearer|key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
		),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
	{
		// Local paths only; URL paths are left readable.
		pattern:     regexp.MustCompile(`(^|[\s'"=])(?:/[\w.-]+){2,}`),
		replacement: "${1}" + RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
