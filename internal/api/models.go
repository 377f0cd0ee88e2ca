package api

import "github.com/phrazzld/teachkit/internal/domain"

// Request bodies. Whitespace-only text passes the tags and is rejected by
// the generation builders.

// LessonPlanRequest defines the payload for POST /api/lesson-plans.
type LessonPlanRequest struct {
	Topic           string `json:"topic"           validate:"required,max=500"`
	GradeLevel      string `json:"gradeLevel"      validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,oneof=15 30 45 60 90"`
}

// QuizRequest defines the payload for POST /api/quizzes.
type QuizRequest struct {
	Topic         string `json:"topic"         validate:"required,max=500"`
	GradeLevel    string `json:"gradeLevel"    validate:"required"`
	QuestionCount int    `json:"questionCount" validate:"required,oneof=3 5 10"`
}

// ImageRequest defines the payload for POST /api/images.
type ImageRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

// GradeLevelResponse is one entry of GET /api/grade-levels.
type GradeLevelResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// OptionsResponse lists the accepted form values.
type OptionsResponse struct {
	GradeLevels        []GradeLevelResponse `json:"gradeLevels"`
	Durations          []int                `json:"durations"`
	QuestionCounts     []int                `json:"questionCounts"`
	LessonPlanSections []string             `json:"lessonPlanSections"`
}

func gradeLevelsToResponse(levels []domain.GradeLevel) []GradeLevelResponse {
	out := make([]GradeLevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, GradeLevelResponse{Code: level.Code(), Label: level.Label()})
	}
	return out
}
