package domain

import "fmt"

// QuizQuestion is a single multiple-choice question.
//
// CorrectAnswer is expected to equal the text of one of Options exactly. The
// remote model's response schema asks for that, but nothing enforces it unless
// QuizData.Validate is called.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect reports whether option is the correct answer for q.
func (q QuizQuestion) IsCorrect(option string) bool {
	return option == q.CorrectAnswer
}

// CorrectIndex returns the index of the correct option, or -1 when no option
// matches CorrectAnswer.
func (q QuizQuestion) CorrectIndex() int {
	for i, opt := range q.Options {
		if q.IsCorrect(opt) {
			return i
		}
	}
	return -1
}

// QuizData is a titled, ordered list of questions.
type QuizData struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// Validate checks that every question's correct answer is one of its options.
func (q QuizData) Validate() error {
	for i, question := range q.Questions {
		if question.CorrectIndex() < 0 {
			return fmt.Errorf("%w: question %d correct answer %q is not among its options",
				ErrInconsistentQuiz, i, question.CorrectAnswer)
		}
	}
	return nil
}
