package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quizcrawler/quizcrawler-api/internal/api"
	apiMiddleware "github.com/quizcrawler/quizcrawler-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.authService)
	quizHandler := api.NewQuizHandler(app.quizService)
	ratingHandler := api.NewRatingHandler(app.ratingService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/google", authHandler.GoogleLogin)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/generate-quiz", quizHandler.GenerateQuiz)
			r.Post("/extract", quizHandler.Extract)

			r.Get("/quiz/last", quizHandler.GetLastQuiz)
			r.Put("/quiz/last", quizHandler.SaveLastQuiz)
			r.Delete("/quiz/last", quizHandler.DeleteLastQuiz)
			r.Get("/quiz/last/export", quizHandler.ExportLastQuiz)

			r.Post("/submit-rating", ratingHandler.SubmitRating)
			r.Get("/check-rating", ratingHandler.CheckRating)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
