package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidGradeLevel is returned when a grade level label or code is unknown.
	ErrInvalidGradeLevel = errors.New("invalid grade level")

	// ErrInconsistentQuiz is returned when a question's correct answer is not
	// one of its options.
	ErrInconsistentQuiz = errors.New("quiz answer not among options")

	// ErrStateNotStarted is returned when a generation state is settled before Begin.
	ErrStateNotStarted = errors.New("generation state not started")

	// ErrStateSettled is returned when a generation state is settled twice.
	ErrStateSettled = errors.New("generation state already settled")
)
