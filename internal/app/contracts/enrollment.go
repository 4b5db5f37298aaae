package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/dto/responses"
)

type EnrollmentRepository interface {
	CreateEnrollments(ctx context.Context, enrollments []models.Enrollment) ([]string, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Enrollment, error)
	// DeleteByIDs compensates an approval whose conditional update lost
	// the review race after the enrollments were already inserted.
	DeleteByIDs(ctx context.Context, enrollmentIDs []string) error
}

type EnrollmentUsecase interface {
	FindByPatientID(ctx context.Context, patientID string) ([]responses.Enrollment, error)
}
