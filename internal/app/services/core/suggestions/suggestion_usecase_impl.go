package suggestions

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/app/services/core/programs"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/dto/requests"
	"continuity-engine/internal/pkg/dto/responses"
	"continuity-engine/internal/pkg/exceptions"
	"continuity-engine/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type suggestionUsecase struct {
	SuggestionRepository contracts.SuggestionRepository
	PatientRepository    contracts.PatientRepository
	ProgramRepository    contracts.ProgramRepository
	EnrollmentRepository contracts.EnrollmentRepository
	LockerService        contracts.LockerService
	EventPublisher       contracts.SuggestionEventPublisher
	Log                  *zap.Logger
}

var (
	suggestionUsecaseInstance contracts.SuggestionUsecase
	onceSuggestionUsecase     sync.Once
)

func NewSuggestionUsecase(
	suggestionRepository contracts.SuggestionRepository,
	patientRepository contracts.PatientRepository,
	programRepository contracts.ProgramRepository,
	enrollmentRepository contracts.EnrollmentRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.SuggestionEventPublisher,
	logger *zap.Logger,
) contracts.SuggestionUsecase {
	onceSuggestionUsecase.Do(func() {
		instance := &suggestionUsecase{
			SuggestionRepository: suggestionRepository,
			PatientRepository:    patientRepository,
			ProgramRepository:    programRepository,
			EnrollmentRepository: enrollmentRepository,
			LockerService:        lockerService,
			EventPublisher:       eventPublisher,
			Log:                  logger,
		}
		suggestionUsecaseInstance = instance
	})
	return suggestionUsecaseInstance
}

func (uc *suggestionUsecase) CreateBillingSuggestion(ctx context.Context, patientID string, request *requests.CreateBillingSuggestion) (*responses.Suggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("suggestionUsecase.CreateBillingSuggestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("suggestionUsecase.CreateBillingSuggestion error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	diagnoses := patient.Diagnoses
	if len(request.Diagnoses) > 0 {
		diagnoses = make([]models.Diagnosis, 0, len(request.Diagnoses))
		for _, input := range request.Diagnoses {
			diagnoses = append(diagnoses, models.Diagnosis{
				Code:    input.Code,
				Display: input.Display,
				Role:    input.Role,
			})
		}
	}

	catalog, err := uc.ProgramRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("suggestionUsecase.CreateBillingSuggestion error fetching catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	candidates := programs.MatchPrograms(diagnoses, catalog)
	if len(candidates) == 0 {
		uc.Log.Info("suggestionUsecase.CreateBillingSuggestion no program matched",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	}

	now := time.Now()
	suggestion := &models.Suggestion{
		ID:                utils.GenerateSuggestionID(),
		PatientID:         patientID,
		Kind:              constvars.SuggestionKindBillingPackage,
		Status:            constvars.SuggestionStatusPending,
		CandidatePrograms: candidates,
		MatchedDiagnoses:  programs.MatchedDiagnoses(diagnoses, catalog),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := uc.SuggestionRepository.CreateSuggestion(ctx, suggestion); err != nil {
		uc.Log.Error("suggestionUsecase.CreateBillingSuggestion error persisting suggestion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, "suggestion.created", suggestion)

	uc.Log.Info("suggestionUsecase.CreateBillingSuggestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestion.ID),
		zap.Int(constvars.LoggingCandidateCountKey, len(candidates)),
	)
	response := responses.NewSuggestion(suggestion)
	return &response, nil
}

func (uc *suggestionUsecase) Approve(ctx context.Context, suggestionID string, request *requests.ApproveSuggestion) (*responses.Suggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("suggestionUsecase.Approve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
		zap.String(constvars.LoggingProgramTypeKey, request.ProgramType),
		zap.String(constvars.LoggingReviewerIDKey, request.ReviewerID),
	)

	// The redis lock serializes reviews of one suggestion so enrollment
	// creation and the conditional update below happen once; the update's
	// PENDING filter stays the authority if the lock ever expires mid-flight.
	lockKey := fmt.Sprintf(constvars.ReviewLockKeyFormat, suggestionID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.ReviewLockExpirationSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSuggestionReviewLocked(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	suggestion, err := uc.SuggestionRepository.FindByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, exceptions.ErrSuggestionNotFound(nil)
	}
	if !suggestion.IsPending() {
		return nil, exceptions.ErrSuggestionAlreadyReviewed(nil)
	}
	if !suggestion.HasCandidate(request.ProgramType) {
		return nil, exceptions.ErrInvalidProgramSelection(nil)
	}

	// CONTINUITY suggestions carry template candidates and only record the
	// reviewer's pick; enrollments exist for billing packages alone.
	var enrollmentIDs []string
	now := time.Now()
	if suggestion.Kind == constvars.SuggestionKindBillingPackage {
		program, err := uc.ProgramRepository.FindByProgramType(ctx, request.ProgramType)
		if err != nil {
			return nil, err
		}
		if program == nil {
			return nil, exceptions.ErrInvalidProgramSelection(nil)
		}

		enrollmentIDs, err = uc.createEnrollments(ctx, suggestion, program, request.ReviewerID, now)
		if err != nil {
			uc.Log.Error("suggestionUsecase.Approve error creating enrollments",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := suggestion.Approve(request.ReviewerID, request.ProgramType, enrollmentIDs, now); err != nil {
		return nil, err
	}

	updated, err := uc.SuggestionRepository.UpdateIfPending(ctx, suggestion)
	if err != nil {
		return nil, err
	}
	if !updated {
		// The enrollments were inserted ahead of the conditional update. When
		// the update loses the race they belong to no approval, so roll them
		// back before reporting the conflict.
		if len(enrollmentIDs) > 0 {
			if deleteErr := uc.EnrollmentRepository.DeleteByIDs(ctx, enrollmentIDs); deleteErr != nil {
				uc.Log.Error("suggestionUsecase.Approve error rolling back enrollments",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
					zap.Error(deleteErr),
				)
			}
		}
		return nil, exceptions.ErrSuggestionAlreadyReviewed(nil)
	}

	uc.publishEvent(ctx, "suggestion.approved", suggestion)

	uc.Log.Info("suggestionUsecase.Approve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
		zap.Int(constvars.LoggingEnrollmentCountKey, len(enrollmentIDs)),
	)
	response := responses.NewSuggestion(suggestion)
	return &response, nil
}

func (uc *suggestionUsecase) Reject(ctx context.Context, suggestionID string, request *requests.RejectSuggestion) (*responses.Suggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("suggestionUsecase.Reject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
		zap.String(constvars.LoggingReviewerIDKey, request.ReviewerID),
	)

	suggestion, err := uc.SuggestionRepository.FindByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, exceptions.ErrSuggestionNotFound(nil)
	}

	if err := suggestion.Reject(request.ReviewerID, request.Reason, time.Now()); err != nil {
		return nil, err
	}

	updated, err := uc.SuggestionRepository.UpdateIfPending(ctx, suggestion)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrSuggestionAlreadyReviewed(nil)
	}

	uc.publishEvent(ctx, "suggestion.rejected", suggestion)

	uc.Log.Info("suggestionUsecase.Reject succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
	)
	response := responses.NewSuggestion(suggestion)
	return &response, nil
}

func (uc *suggestionUsecase) FindSuggestionByID(ctx context.Context, suggestionID string) (*responses.Suggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("suggestionUsecase.FindSuggestionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestionID),
	)

	suggestion, err := uc.SuggestionRepository.FindByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, exceptions.ErrSuggestionNotFound(nil)
	}
	response := responses.NewSuggestion(suggestion)
	return &response, nil
}

func (uc *suggestionUsecase) ListHistory(ctx context.Context, filter contracts.SuggestionFilter) ([]responses.Suggestion, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("suggestionUsecase.ListHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, filter.PatientID),
	)

	suggestionList, err := uc.SuggestionRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("suggestionUsecase.ListHistory error fetching suggestions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	total, err := uc.SuggestionRepository.Count(ctx, filter)
	if err != nil {
		uc.Log.Error("suggestionUsecase.ListHistory error counting suggestions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return responses.NewSuggestionList(suggestionList), total, nil
}

// createEnrollments opens one enrollment per CPT code declared by the
// selected program, or a single one when the program declares none.
func (uc *suggestionUsecase) createEnrollments(ctx context.Context, suggestion *models.Suggestion, program *models.BillingProgramDefinition, reviewerID string, now time.Time) ([]string, error) {
	cptCodes := program.CPTCodes
	if len(cptCodes) == 0 {
		cptCodes = []string{""}
	}

	enrollments := make([]models.Enrollment, 0, len(cptCodes))
	for _, cptCode := range cptCodes {
		enrollments = append(enrollments, models.Enrollment{
			ID:                 utils.GenerateEnrollmentID(),
			PatientID:          suggestion.PatientID,
			SuggestionID:       suggestion.ID,
			ProgramType:        program.ProgramType,
			BillingProgramCode: program.BillingProgramCode,
			CPTCode:            cptCode,
			Status:             constvars.EnrollmentStatusActive,
			EnrolledBy:         reviewerID,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
	}
	return uc.EnrollmentRepository.CreateEnrollments(ctx, enrollments)
}

// publishEvent is advisory: a queue outage must not fail a review, so
// errors are logged and swallowed.
func (uc *suggestionUsecase) publishEvent(ctx context.Context, eventName string, suggestion *models.Suggestion) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := contracts.SuggestionEvent{
		Event:        eventName,
		SuggestionID: suggestion.ID,
		PatientID:    suggestion.PatientID,
		Status:       suggestion.Status,
		ReviewedBy:   suggestion.ReviewedBy,
		OccurredAt:   time.Now().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishSuggestionEvent(ctx, event); err != nil {
		uc.Log.Error("suggestionUsecase.publishEvent error publishing lifecycle event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventName),
			zap.String(constvars.LoggingSuggestionIDKey, suggestion.ID),
			zap.Error(err),
		)
	}
}
