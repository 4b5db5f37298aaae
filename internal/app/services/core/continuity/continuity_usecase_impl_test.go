package continuity

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeMetricResolver struct {
	metricSet map[string]models.Observation
	err       error
}

func (f *fakeMetricResolver) ResolveFreshMetrics(ctx context.Context, patientID string, asOf time.Time, validityWindow time.Duration) (map[string]models.Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.metricSet, nil
}

type fakeTemplateRepository struct {
	templates []models.AssessmentTemplate
}

func (f *fakeTemplateRepository) FindByID(ctx context.Context, templateID string) (*models.AssessmentTemplate, error) {
	for i := range f.templates {
		if f.templates[i].ID == templateID {
			return &f.templates[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepository) FindAll(ctx context.Context) ([]models.AssessmentTemplate, error) {
	return f.templates, nil
}

func freshMetricSet(metricIDs ...string) map[string]models.Observation {
	metricSet := make(map[string]models.Observation, len(metricIDs))
	for _, metricID := range metricIDs {
		value := 1.0
		metricSet[metricID] = models.Observation{
			ID:       "obs-" + metricID,
			MetricID: metricID,
			Value:    models.ObservationValue{Type: "numeric", Numeric: &value},
		}
	}
	return metricSet
}

type fakeMetricRepository struct {
	definitions []models.MetricDefinition
}

func (f *fakeMetricRepository) FindAll(ctx context.Context) ([]models.MetricDefinition, error) {
	return f.definitions, nil
}

type fakeSuggestionStore struct {
	created []models.Suggestion
}

func (f *fakeSuggestionStore) CreateSuggestion(ctx context.Context, suggestion *models.Suggestion) (string, error) {
	f.created = append(f.created, *suggestion)
	return suggestion.ID, nil
}

func (f *fakeSuggestionStore) FindByID(ctx context.Context, suggestionID string) (*models.Suggestion, error) {
	return nil, nil
}

func (f *fakeSuggestionStore) FindAll(ctx context.Context, filter contracts.SuggestionFilter) ([]models.Suggestion, error) {
	return nil, nil
}

func (f *fakeSuggestionStore) Count(ctx context.Context, filter contracts.SuggestionFilter) (int, error) {
	return 0, nil
}

func (f *fakeSuggestionStore) UpdateIfPending(ctx context.Context, suggestion *models.Suggestion) (bool, error) {
	return false, nil
}

type fakeEventPublisher struct {
	events []contracts.SuggestionEvent
}

func (f *fakeEventPublisher) PublishSuggestionEvent(ctx context.Context, event contracts.SuggestionEvent) error {
	f.events = append(f.events, event)
	return nil
}

func newUsecaseForTest(resolver *fakeMetricResolver, templateRepo *fakeTemplateRepository) *continuityUsecase {
	return &continuityUsecase{
		MetricResolver:       resolver,
		TemplateRepository:   templateRepo,
		MetricRepository:     &fakeMetricRepository{},
		SuggestionRepository: &fakeSuggestionStore{},
		EventPublisher:       &fakeEventPublisher{},
		Log:                  zap.NewNop(),
	}
}

func TestAdviseReuse(t *testing.T) {
	window := 72 * time.Hour
	templates := []models.AssessmentTemplate{
		{
			ID:   "tpl-vitals",
			Name: "Vitals Check",
			Items: []models.TemplateItem{
				{MetricID: "bp_systolic", IsRequired: true},
				{MetricID: "bp_diastolic", IsRequired: true},
				{MetricID: "weight"},
			},
		},
		{
			ID:   "tpl-empty",
			Name: "Draft Template",
		},
	}

	t.Run("splits items into reusable and gaps", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet("bp_systolic", "weight")}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		advice, err := uc.AdviseReuse(context.Background(), "patient-1", "", window)

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", advice.PatientID)
		assert.Equal(t, 72, advice.ValidityWindowHours)
		assert.Len(t, advice.Advices, 1)

		vitals := advice.Advices[0]
		assert.Equal(t, "tpl-vitals", vitals.TemplateID)
		assert.Equal(t, 67, vitals.ContinuityScore)
		assert.Len(t, vitals.Reusable, 2)
		assert.Equal(t, "bp_systolic", vitals.Reusable[0].MetricID)
		assert.Equal(t, "obs-bp_systolic", vitals.Reusable[0].Observation.ID)
		assert.Equal(t, []string{"bp_diastolic"}, vitals.MustCollect)
		assert.Empty(t, vitals.OptionalUncollected)
	})

	t.Run("optional gaps are separated from required ones", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet("bp_systolic")}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		advice, err := uc.AdviseReuse(context.Background(), "patient-1", "", window)

		assert.NoError(t, err)
		vitals := advice.Advices[0]
		assert.Equal(t, []string{"bp_diastolic"}, vitals.MustCollect)
		assert.Equal(t, []string{"weight"}, vitals.OptionalUncollected)
	})

	t.Run("requested template is advised even when unscored", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet("bp_systolic")}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		advice, err := uc.AdviseReuse(context.Background(), "patient-1", "tpl-empty", window)

		assert.NoError(t, err)
		assert.Len(t, advice.Advices, 1)
		assert.Equal(t, "tpl-empty", advice.Advices[0].TemplateID)
		assert.True(t, advice.Advices[0].Unscored)
	})

	t.Run("unknown template is an error", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet()}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		_, err := uc.AdviseReuse(context.Background(), "patient-1", "tpl-missing", window)

		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("no fresh data still yields ranked advice with zero scores", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet()}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		advice, err := uc.AdviseReuse(context.Background(), "patient-1", "", window)

		assert.NoError(t, err)
		assert.Len(t, advice.Advices, 1)
		assert.Equal(t, 0, advice.Advices[0].ContinuityScore)
		assert.Empty(t, advice.Advices[0].Reusable)
	})

	t.Run("resolver errors propagate", func(t *testing.T) {
		resolver := &fakeMetricResolver{err: exceptions.ErrPatientNotFound(nil)}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		_, err := uc.AdviseReuse(context.Background(), "patient-missing", "", window)

		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestCreateContinuitySuggestion(t *testing.T) {
	window := 72 * time.Hour
	templates := []models.AssessmentTemplate{
		{
			ID:   "tpl-vitals",
			Name: "Vitals Check",
			Items: []models.TemplateItem{
				{MetricID: "bp_systolic", IsRequired: true},
				{MetricID: "bp_diastolic", IsRequired: true},
				{MetricID: "weight"},
			},
		},
		{
			ID:   "tpl-empty",
			Name: "Draft Template",
		},
	}

	t.Run("persists a pending suggestion with the ranked templates", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet("bp_systolic", "weight")}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})
		store := &fakeSuggestionStore{}
		publisher := &fakeEventPublisher{}
		uc.SuggestionRepository = store
		uc.EventPublisher = publisher

		response, err := uc.CreateContinuitySuggestion(context.Background(), "patient-1", window)

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Equal(t, constvars.SuggestionKindContinuity, response.Kind)
		assert.Equal(t, constvars.SuggestionStatusPending, response.Status)
		assert.Len(t, response.CandidatePrograms, 1)
		assert.Equal(t, "tpl-vitals", response.CandidatePrograms[0].TargetID)
		assert.Equal(t, "72", response.Metadata[constvars.SuggestionMetadataValidityWindowHours])

		assert.Len(t, store.created, 1)
		assert.Equal(t, "patient-1", store.created[0].PatientID)

		assert.Len(t, publisher.events, 1)
		assert.Equal(t, "suggestion.created", publisher.events[0].Event)
	})

	t.Run("no rankable template yields no suggestion", func(t *testing.T) {
		resolver := &fakeMetricResolver{metricSet: freshMetricSet("bp_systolic")}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{
			templates: []models.AssessmentTemplate{{ID: "tpl-empty", Name: "Draft Template"}},
		})
		store := &fakeSuggestionStore{}
		uc.SuggestionRepository = store

		response, err := uc.CreateContinuitySuggestion(context.Background(), "patient-1", window)

		assert.NoError(t, err)
		assert.Nil(t, response)
		assert.Empty(t, store.created)
	})

	t.Run("resolver errors propagate", func(t *testing.T) {
		resolver := &fakeMetricResolver{err: exceptions.ErrPatientNotFound(nil)}
		uc := newUsecaseForTest(resolver, &fakeTemplateRepository{templates: templates})

		_, err := uc.CreateContinuitySuggestion(context.Background(), "patient-missing", window)

		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestResolveFreshMetrics(t *testing.T) {
	resolver := &fakeMetricResolver{metricSet: freshMetricSet("weight")}
	uc := newUsecaseForTest(resolver, &fakeTemplateRepository{})
	uc.MetricRepository = &fakeMetricRepository{
		definitions: []models.MetricDefinition{
			{ID: "metric-1", Key: "weight", DisplayName: "Body Weight", Unit: "kg"},
			{ID: "metric-2", Key: "bp_systolic", DisplayName: "Systolic BP", Unit: "mmHg"},
		},
	}

	response, err := uc.ResolveFreshMetrics(context.Background(), "patient-1", 48*time.Hour)

	assert.NoError(t, err)
	assert.Equal(t, "patient-1", response.PatientID)
	assert.Equal(t, 48, response.ValidityWindowHours)
	assert.Len(t, response.Metrics, 1)
	assert.Len(t, response.Definitions, 1)
	assert.Equal(t, "Body Weight", response.Definitions["weight"].DisplayName)
}
