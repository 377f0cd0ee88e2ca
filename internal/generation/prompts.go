package generation

import (
	"bytes"
	"embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/phrazzld/teachkit/internal/domain"
	"google.golang.org/genai"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var prompts = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Accepted request parameters.
var (
	LessonDurations = []int{15, 30, 45, 60, 90}
	QuestionCounts  = []int{3, 5, 10}
)

// LessonPlanSections are the Markdown headers the lesson-plan prompt asks
// for, in the order they must appear.
var LessonPlanSections = []string{
	"Lesson Title",
	"Objectives",
	"Materials Needed",
	"Warm-up",
	"Main Activity",
	"Wrap-up & Assessment",
	"Homework/Extension",
}

type lessonPlanData struct {
	Topic               string
	Grade               string
	DurationMinutes     int
	WarmUpMinutes       int
	MainActivityMinutes int
	WrapUpMinutes       int
}

type quizData struct {
	Topic         string
	Grade         string
	QuestionCount int
}

type imageData struct {
	Description string
}

// LessonSegments splits a lesson into warm-up, main activity and wrap-up
// minutes: the floors of 15%, 60% and 25% of the total. The parts are not
// normalised and may sum to less than the total.
func LessonSegments(durationMinutes int) (warmUp, main, wrapUp int) {
	return durationMinutes * 15 / 100, durationMinutes * 60 / 100, durationMinutes * 25 / 100
}

// BuildLessonPlanPrompt renders the lesson-plan instruction.
func BuildLessonPlanPrompt(topic string, grade domain.GradeLevel, durationMinutes int) (string, error) {
	topic, err := requireText("topic", topic)
	if err != nil {
		return "", err
	}
	if err := requireGrade(grade); err != nil {
		return "", err
	}
	if !slices.Contains(LessonDurations, durationMinutes) {
		return "", fmt.Errorf("%w: duration %d minutes is not one of %v",
			ErrInvalidInput, durationMinutes, LessonDurations)
	}

	warmUp, main, wrapUp := LessonSegments(durationMinutes)
	return render("lesson_plan.tmpl", lessonPlanData{
		Topic:               topic,
		Grade:               grade.Label(),
		DurationMinutes:     durationMinutes,
		WarmUpMinutes:       warmUp,
		MainActivityMinutes: main,
		WrapUpMinutes:       wrapUp,
	})
}

// BuildQuizPrompt renders the quiz instruction and returns the response
// schema the model must follow.
func BuildQuizPrompt(topic string, grade domain.GradeLevel, questionCount int) (string, *genai.Schema, error) {
	topic, err := requireText("topic", topic)
	if err != nil {
		return "", nil, err
	}
	if err := requireGrade(grade); err != nil {
		return "", nil, err
	}
	if !slices.Contains(QuestionCounts, questionCount) {
		return "", nil, fmt.Errorf("%w: question count %d is not one of %v",
			ErrInvalidInput, questionCount, QuestionCounts)
	}

	prompt, err := render("quiz.tmpl", quizData{
		Topic:         topic,
		Grade:         grade.Label(),
		QuestionCount: questionCount,
	})
	if err != nil {
		return "", nil, err
	}
	return prompt, QuizSchema(), nil
}

// BuildImagePrompt wraps description in the classroom illustration style.
func BuildImagePrompt(description string) (string, error) {
	description, err := requireText("description", description)
	if err != nil {
		return "", err
	}
	return render("image.tmpl", imageData{Description: description})
}

func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, field)
	}
	return trimmed, nil
}

func requireGrade(grade domain.GradeLevel) error {
	if !grade.Valid() {
		return fmt.Errorf("%w: unknown grade level %q", ErrInvalidInput, string(grade))
	}
	return nil
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
