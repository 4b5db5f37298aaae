package routers

import (
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/services/core/continuity"
	"continuity-engine/internal/app/services/core/enrollments"
	"continuity-engine/internal/app/services/core/suggestions"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	continuityController *continuity.ContinuityController,
	suggestionController *suggestions.SuggestionController,
	enrollmentController *enrollments.EnrollmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
				utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, nil)
			})

			r.Route("/continuity-suggestions", func(r chi.Router) {
				attachContinuityRoutes(r, middlewares, continuityController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, continuityController, suggestionController)
			})

			r.Route("/suggestions", func(r chi.Router) {
				attachSuggestionRoutes(r, middlewares, suggestionController)
			})

			r.Get("/suggestion-history", suggestionController.FindSuggestionHistory)

			r.Route("/enrollments", func(r chi.Router) {
				attachEnrollmentRoutes(r, middlewares, enrollmentController)
			})
		})
	})
}
