// Package generation turns teacher requests into calls to a generative model
// and turns the model's answers back into domain values.
//
// Each of the three operations (lesson plan, quiz, educational image) is a
// straight pipeline:
//
//  1. a builder renders the prompt (and, for quizzes, the response schema),
//  2. a ModelClient performs exactly one round trip to the remote model,
//  3. a decoder extracts text, a QuizData or an image from the RawResponse.
//
// Service wires the three steps together. Nothing is cached or retried; a
// failure is returned to the caller wrapped around one of the sentinel errors
// in errors.go.
package generation
