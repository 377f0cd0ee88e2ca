// Package logger provides structured logging functionality for the application.
//
// It builds a log/slog JSON logger at the configured level. The handler copies
// attributes stored on the context (such as the request trace id) onto every
// record logged through one of the ...Context methods.
package logger
