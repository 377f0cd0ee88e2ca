// Package config loads, defaults and validates the service settings. Values
// come from built-in defaults, an optional config.yaml and TEACHKIT_-prefixed
// environment variables, in increasing order of precedence.
package config
