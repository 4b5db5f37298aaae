package routers

import (
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/services/core/enrollments"

	"github.com/go-chi/chi/v5"
)

func attachEnrollmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, enrollmentController *enrollments.EnrollmentController) {
	router.Get("/{patient_id}", enrollmentController.FindEnrollmentsByPatientID)
}
