package domain

import (
	"encoding/json"
	"fmt"
)

// ResultKind identifies which operation produced a Result.
type ResultKind string

// Result kinds.
const (
	ResultNone  ResultKind = "none"
	ResultText  ResultKind = "text"
	ResultQuiz  ResultKind = "quiz"
	ResultImage ResultKind = "image"
)

// Result is the payload of a finished generation. Exactly one of the payload
// fields is meaningful, selected by Kind. Construct it with TextResult,
// QuizResult or ImageResult; the zero value is a ResultNone.
type Result struct {
	kind  ResultKind
	text  string
	quiz  QuizData
	image ImageRef
}

// TextResult wraps generated Markdown text.
func TextResult(text string) Result {
	return Result{kind: ResultText, text: text}
}

// QuizResult wraps a generated quiz.
func QuizResult(quiz QuizData) Result {
	return Result{kind: ResultQuiz, quiz: quiz}
}

// ImageResult wraps a generated image.
func ImageResult(image ImageRef) Result {
	return Result{kind: ResultImage, image: image}
}

// Kind returns the variant held by r.
func (r Result) Kind() ResultKind {
	if r.kind == "" {
		return ResultNone
	}
	return r.kind
}

// Text returns the text payload and whether r holds one.
func (r Result) Text() (string, bool) {
	return r.text, r.kind == ResultText
}

// Quiz returns the quiz payload and whether r holds one.
func (r Result) Quiz() (QuizData, bool) {
	return r.quiz, r.kind == ResultQuiz
}

// Image returns the image payload and whether r holds one.
func (r Result) Image() (ImageRef, bool) {
	return r.image, r.kind == ResultImage
}

type imageJSON struct {
	DataURI  string `json:"dataUri"`
	MIMEType string `json:"mimeType"`
}

type resultJSON struct {
	Kind  ResultKind `json:"kind"`
	Text  *string    `json:"text,omitempty"`
	Quiz  *QuizData  `json:"quiz,omitempty"`
	Image *imageJSON `json:"image,omitempty"`
}

// MarshalJSON renders r as {"kind": ..., "<kind>": payload}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Kind: r.Kind()}
	switch r.Kind() {
	case ResultText:
		out.Text = &r.text
	case ResultQuiz:
		out.Quiz = &r.quiz
	case ResultImage:
		out.Image = &imageJSON{DataURI: r.image.DataURI(), MIMEType: r.image.MIMEType}
	case ResultNone:
	default:
		return nil, fmt.Errorf("unknown result kind %q", r.kind)
	}
	return json.Marshal(out)
}
