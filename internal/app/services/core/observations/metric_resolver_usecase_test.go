package observations

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

type fakeObservationRepository struct {
	observations []models.Observation
	gotFrom      time.Time
	gotTo        time.Time
}

func (f *fakeObservationRepository) FindByPatientInWindow(ctx context.Context, patientID string, from, to time.Time) ([]models.Observation, error) {
	f.gotFrom = from
	f.gotTo = to

	var inWindow []models.Observation
	for _, observation := range f.observations {
		if observation.PatientID != patientID {
			continue
		}
		if observation.RecordedAt.Before(from) || observation.RecordedAt.After(to) {
			continue
		}
		inWindow = append(inWindow, observation)
	}
	return inWindow, nil
}

func recordedObservation(id, metricID string, recordedAt time.Time) models.Observation {
	value := 98.6
	return models.Observation{
		ID:        id,
		PatientID: "patient-1",
		MetricID:  metricID,
		Value: models.ObservationValue{
			Type:    "numeric",
			Numeric: &value,
		},
		RecordedAt: recordedAt,
	}
}

func newResolverForTest(patientRepo contracts.PatientRepository, observationRepo contracts.ObservationRepository) contracts.MetricResolverUsecase {
	return &metricResolverUsecase{
		PatientRepository:     patientRepo,
		ObservationRepository: observationRepo,
		Log:                   zap.NewNop(),
	}
}

func TestResolveFreshMetrics(t *testing.T) {
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	window := 72 * time.Hour
	patientRepo := &fakePatientRepository{
		patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", FullName: "Test Patient"},
		},
	}

	t.Run("keeps only the latest observation per metric", func(t *testing.T) {
		observationRepo := &fakeObservationRepository{
			observations: []models.Observation{
				recordedObservation("obs-1", "weight", asOf.Add(-48*time.Hour)),
				recordedObservation("obs-2", "weight", asOf.Add(-2*time.Hour)),
				recordedObservation("obs-3", "bp_systolic", asOf.Add(-1*time.Hour)),
			},
		}
		uc := newResolverForTest(patientRepo, observationRepo)

		metricSet, err := uc.ResolveFreshMetrics(context.Background(), "patient-1", asOf, window)

		assert.NoError(t, err)
		assert.Len(t, metricSet, 2)
		assert.Equal(t, "obs-2", metricSet["weight"].ID)
		assert.Equal(t, "obs-3", metricSet["bp_systolic"].ID)
	})

	t.Run("observations outside the window are excluded", func(t *testing.T) {
		observationRepo := &fakeObservationRepository{
			observations: []models.Observation{
				recordedObservation("obs-stale", "weight", asOf.Add(-100*time.Hour)),
			},
		}
		uc := newResolverForTest(patientRepo, observationRepo)

		metricSet, err := uc.ResolveFreshMetrics(context.Background(), "patient-1", asOf, window)

		assert.NoError(t, err)
		assert.Empty(t, metricSet)
		assert.Equal(t, asOf.Add(-window), observationRepo.gotFrom)
		assert.Equal(t, asOf, observationRepo.gotTo)
	})

	t.Run("recency ties resolve to the higher observation ID", func(t *testing.T) {
		sameInstant := asOf.Add(-1 * time.Hour)
		observationRepo := &fakeObservationRepository{
			observations: []models.Observation{
				recordedObservation("obs-b", "weight", sameInstant),
				recordedObservation("obs-a", "weight", sameInstant),
			},
		}
		uc := newResolverForTest(patientRepo, observationRepo)

		metricSet, err := uc.ResolveFreshMetrics(context.Background(), "patient-1", asOf, window)

		assert.NoError(t, err)
		assert.Equal(t, "obs-b", metricSet["weight"].ID)
	})

	t.Run("unknown patient is an error", func(t *testing.T) {
		uc := newResolverForTest(patientRepo, &fakeObservationRepository{})

		_, err := uc.ResolveFreshMetrics(context.Background(), "patient-missing", asOf, window)

		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("patient without observations yields empty set", func(t *testing.T) {
		uc := newResolverForTest(patientRepo, &fakeObservationRepository{})

		metricSet, err := uc.ResolveFreshMetrics(context.Background(), "patient-1", asOf, window)

		assert.NoError(t, err)
		assert.Empty(t, metricSet)
	})
}

func TestLatestPerMetric(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("result is independent of input order", func(t *testing.T) {
		forward := []models.Observation{
			recordedObservation("obs-1", "weight", base),
			recordedObservation("obs-2", "weight", base.Add(time.Hour)),
		}
		backward := []models.Observation{forward[1], forward[0]}

		assert.Equal(t, LatestPerMetric(forward), LatestPerMetric(backward))
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		assert.Empty(t, LatestPerMetric(nil))
	})
}
