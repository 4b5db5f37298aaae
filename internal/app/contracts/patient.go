package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
)

type PatientRepository interface {
	// FindByID returns (nil, nil) when the patient does not exist.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
