package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
	"time"
)

type ObservationRepository interface {
	// FindByPatientInWindow returns all observations for the patient with
	// recordedAt inside [from, to], ordered by insertion.
	FindByPatientInWindow(ctx context.Context, patientID string, from, to time.Time) ([]models.Observation, error)
}

type MetricResolverUsecase interface {
	// ResolveFreshMetrics keeps, per metric, only the most recent
	// observation recorded within the validity window before asOf.
	// An empty map means no fresh data; a missing patient is an error.
	ResolveFreshMetrics(ctx context.Context, patientID string, asOf time.Time, validityWindow time.Duration) (map[string]models.Observation, error)
}
