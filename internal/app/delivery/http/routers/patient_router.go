package routers

import (
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/services/core/continuity"
	"continuity-engine/internal/app/services/core/suggestions"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, continuityController *continuity.ContinuityController, suggestionController *suggestions.SuggestionController) {
	router.Get("/{patient_id}/metrics/fresh", continuityController.FindFreshMetrics)
	router.Post("/{patient_id}/billing-suggestions", suggestionController.CreateBillingSuggestion)
	router.Post("/{patient_id}/continuity-suggestions", continuityController.CreateContinuitySuggestion)
}
