package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/teachkit/internal/api"
	apiMiddleware "github.com/phrazzld/teachkit/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/grade-levels", api.GradeLevels)
		r.Get("/options", api.Options)

		r.Post("/lesson-plans", app.handler.LessonPlan)
		r.Post("/quizzes", app.handler.Quiz)
		r.Post("/images", app.handler.Image)
	})

	r.Get("/health", api.Health)

	return r
}
