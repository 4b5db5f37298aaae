package routers

import (
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/services/core/continuity"

	"github.com/go-chi/chi/v5"
)

func attachContinuityRoutes(router chi.Router, middlewares *middlewares.Middlewares, continuityController *continuity.ContinuityController) {
	router.Get("/{patient_id}", continuityController.FindContinuityAdvice)
}
