package observations

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type metricResolverUsecase struct {
	PatientRepository     contracts.PatientRepository
	ObservationRepository contracts.ObservationRepository
	Log                   *zap.Logger
}

var (
	metricResolverUsecaseInstance contracts.MetricResolverUsecase
	onceMetricResolverUsecase     sync.Once
)

func NewMetricResolverUsecase(
	patientRepository contracts.PatientRepository,
	observationRepository contracts.ObservationRepository,
	logger *zap.Logger,
) contracts.MetricResolverUsecase {
	onceMetricResolverUsecase.Do(func() {
		instance := &metricResolverUsecase{
			PatientRepository:     patientRepository,
			ObservationRepository: observationRepository,
			Log:                   logger,
		}
		metricResolverUsecaseInstance = instance
	})
	return metricResolverUsecaseInstance
}

func (uc *metricResolverUsecase) ResolveFreshMetrics(ctx context.Context, patientID string, asOf time.Time, validityWindow time.Duration) (map[string]models.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("metricResolverUsecase.ResolveFreshMetrics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Duration(constvars.LoggingValidityWindowKey, validityWindow),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("metricResolverUsecase.ResolveFreshMetrics error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	from := asOf.Add(-validityWindow)
	observationList, err := uc.ObservationRepository.FindByPatientInWindow(ctx, patientID, from, asOf)
	if err != nil {
		uc.Log.Error("metricResolverUsecase.ResolveFreshMetrics error fetching observations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	metricSet := LatestPerMetric(observationList)

	uc.Log.Info("metricResolverUsecase.ResolveFreshMetrics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingObservationCountKey, len(observationList)),
		zap.Int(constvars.LoggingMetricCountKey, len(metricSet)),
	)
	return metricSet, nil
}

// LatestPerMetric keeps the most recent observation per metric. A recency
// tie goes to the higher observation ID, so the result is deterministic
// regardless of input order.
func LatestPerMetric(observationList []models.Observation) map[string]models.Observation {
	metricSet := make(map[string]models.Observation, len(observationList))
	for _, observation := range observationList {
		current, ok := metricSet[observation.MetricID]
		if !ok || supersedes(observation, current) {
			metricSet[observation.MetricID] = observation
		}
	}
	return metricSet
}

func supersedes(candidate, current models.Observation) bool {
	if candidate.RecordedAt.After(current.RecordedAt) {
		return true
	}
	if candidate.RecordedAt.Equal(current.RecordedAt) {
		return candidate.ID > current.ID
	}
	return false
}
