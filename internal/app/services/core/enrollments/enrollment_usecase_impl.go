package enrollments

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/dto/responses"
	"continuity-engine/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type enrollmentUsecase struct {
	EnrollmentRepository contracts.EnrollmentRepository
	PatientRepository    contracts.PatientRepository
	Log                  *zap.Logger
}

var (
	enrollmentUsecaseInstance contracts.EnrollmentUsecase
	onceEnrollmentUsecase     sync.Once
)

func NewEnrollmentUsecase(
	enrollmentRepository contracts.EnrollmentRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.EnrollmentUsecase {
	onceEnrollmentUsecase.Do(func() {
		instance := &enrollmentUsecase{
			EnrollmentRepository: enrollmentRepository,
			PatientRepository:    patientRepository,
			Log:                  logger,
		}
		enrollmentUsecaseInstance = instance
	})
	return enrollmentUsecaseInstance
}

func (uc *enrollmentUsecase) FindByPatientID(ctx context.Context, patientID string) ([]responses.Enrollment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("enrollmentUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	enrollmentList, err := uc.EnrollmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("enrollmentUsecase.FindByPatientID error fetching enrollments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("enrollmentUsecase.FindByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingEnrollmentCountKey, len(enrollmentList)),
	)
	return responses.NewEnrollmentList(enrollmentList), nil
}
