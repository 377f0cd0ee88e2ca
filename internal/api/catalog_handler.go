package api

import (
	"net/http"

	"github.com/phrazzld/teachkit/internal/api/shared"
	"github.com/phrazzld/teachkit/internal/domain"
	"github.com/phrazzld/teachkit/internal/generation"
)

// GradeLevels handles GET /api/grade-levels requests
func GradeLevels(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, gradeLevelsToResponse(domain.GradeLevels()))
}

// Options handles GET /api/options requests
func Options(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, OptionsResponse{
		GradeLevels:        gradeLevelsToResponse(domain.GradeLevels()),
		Durations:          append([]int(nil), generation.LessonDurations...),
		QuestionCounts:     append([]int(nil), generation.QuestionCounts...),
		LessonPlanSections: append([]string(nil), generation.LessonPlanSections...),
	})
}

// Health handles GET /health requests
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
