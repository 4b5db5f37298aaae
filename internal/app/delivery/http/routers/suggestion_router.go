package routers

import (
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/services/core/suggestions"

	"github.com/go-chi/chi/v5"
)

func attachSuggestionRoutes(router chi.Router, middlewares *middlewares.Middlewares, suggestionController *suggestions.SuggestionController) {
	router.Get("/{suggestion_id}", suggestionController.FindSuggestionByID)
	router.Post("/{suggestion_id}/approve", suggestionController.ApproveSuggestion)
	router.Post("/{suggestion_id}/reject", suggestionController.RejectSuggestion)
}
