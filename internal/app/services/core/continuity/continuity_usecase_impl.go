package continuity

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/app/services/core/templates"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/dto/responses"
	"continuity-engine/internal/pkg/exceptions"
	"continuity-engine/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// continuityUsecase composes the metric resolver and the template scorer
// into the reuse advisor: what fresh data can seed each assessment, and
// what still has to be collected.
type continuityUsecase struct {
	MetricResolver       contracts.MetricResolverUsecase
	TemplateRepository   contracts.TemplateRepository
	MetricRepository     contracts.MetricRepository
	SuggestionRepository contracts.SuggestionRepository
	EventPublisher       contracts.SuggestionEventPublisher
	Log                  *zap.Logger
}

var (
	continuityUsecaseInstance contracts.ContinuityUsecase
	onceContinuityUsecase     sync.Once
)

func NewContinuityUsecase(
	metricResolver contracts.MetricResolverUsecase,
	templateRepository contracts.TemplateRepository,
	metricRepository contracts.MetricRepository,
	suggestionRepository contracts.SuggestionRepository,
	eventPublisher contracts.SuggestionEventPublisher,
	logger *zap.Logger,
) contracts.ContinuityUsecase {
	onceContinuityUsecase.Do(func() {
		instance := &continuityUsecase{
			MetricResolver:       metricResolver,
			TemplateRepository:   templateRepository,
			MetricRepository:     metricRepository,
			SuggestionRepository: suggestionRepository,
			EventPublisher:       eventPublisher,
			Log:                  logger,
		}
		continuityUsecaseInstance = instance
	})
	return continuityUsecaseInstance
}

func (uc *continuityUsecase) AdviseReuse(ctx context.Context, patientID, templateID string, validityWindow time.Duration) (*responses.ContinuityAdvice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("continuityUsecase.AdviseReuse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
		zap.Duration(constvars.LoggingValidityWindowKey, validityWindow),
	)

	metricSet, err := uc.MetricResolver.ResolveFreshMetrics(ctx, patientID, time.Now(), validityWindow)
	if err != nil {
		return nil, err
	}

	advice := &responses.ContinuityAdvice{
		PatientID:           patientID,
		ValidityWindowHours: int(validityWindow.Hours()),
		Advices:             []responses.ReuseAdvice{},
	}

	if templateID != "" {
		template, err := uc.TemplateRepository.FindByID(ctx, templateID)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, exceptions.ErrTemplateNotFound(nil)
		}
		// A directly requested template is advised even when unscored.
		result := templates.ScoreTemplate(template, metricSet)
		advice.Advices = append(advice.Advices, buildReuseAdvice(template, metricSet, result))
		return advice, nil
	}

	templateList, err := uc.TemplateRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("continuityUsecase.AdviseReuse error fetching templates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	templatesByID := make(map[string]*models.AssessmentTemplate, len(templateList))
	for i := range templateList {
		templatesByID[templateList[i].ID] = &templateList[i]
	}

	for _, result := range templates.RankTemplates(templateList, metricSet) {
		advice.Advices = append(advice.Advices, buildReuseAdvice(templatesByID[result.TargetID], metricSet, result))
	}

	uc.Log.Info("continuityUsecase.AdviseReuse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingMetricCountKey, len(metricSet)),
	)
	return advice, nil
}

func (uc *continuityUsecase) ResolveFreshMetrics(ctx context.Context, patientID string, validityWindow time.Duration) (*responses.FreshMetrics, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("continuityUsecase.ResolveFreshMetrics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Duration(constvars.LoggingValidityWindowKey, validityWindow),
	)

	metricSet, err := uc.MetricResolver.ResolveFreshMetrics(ctx, patientID, time.Now(), validityWindow)
	if err != nil {
		return nil, err
	}

	return &responses.FreshMetrics{
		PatientID:           patientID,
		ValidityWindowHours: int(validityWindow.Hours()),
		Metrics:             metricSet,
		Definitions:         uc.definitionsFor(ctx, metricSet),
	}, nil
}

// CreateContinuitySuggestion runs the same ranking as AdviseReuse but
// persists the outcome as a PENDING suggestion so a clinician can pick the
// template through the regular review flow. Candidates are the ranked
// template match results; unscored templates never become candidates.
func (uc *continuityUsecase) CreateContinuitySuggestion(ctx context.Context, patientID string, validityWindow time.Duration) (*responses.Suggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("continuityUsecase.CreateContinuitySuggestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Duration(constvars.LoggingValidityWindowKey, validityWindow),
	)

	metricSet, err := uc.MetricResolver.ResolveFreshMetrics(ctx, patientID, time.Now(), validityWindow)
	if err != nil {
		return nil, err
	}

	templateList, err := uc.TemplateRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("continuityUsecase.CreateContinuitySuggestion error fetching templates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	candidates := templates.RankTemplates(templateList, metricSet)
	if len(candidates) == 0 {
		uc.Log.Info("continuityUsecase.CreateContinuitySuggestion no template ranked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	}

	now := time.Now()
	suggestion := &models.Suggestion{
		ID:                utils.GenerateSuggestionID(),
		PatientID:         patientID,
		Kind:              constvars.SuggestionKindContinuity,
		Status:            constvars.SuggestionStatusPending,
		CandidatePrograms: candidates,
		Metadata: map[string]string{
			constvars.SuggestionMetadataValidityWindowHours: strconv.Itoa(int(validityWindow.Hours())),
		},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := uc.SuggestionRepository.CreateSuggestion(ctx, suggestion); err != nil {
		uc.Log.Error("continuityUsecase.CreateContinuitySuggestion error persisting suggestion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Advisory, same as the billing lifecycle events.
	event := contracts.SuggestionEvent{
		Event:        "suggestion.created",
		SuggestionID: suggestion.ID,
		PatientID:    suggestion.PatientID,
		Status:       suggestion.Status,
		OccurredAt:   time.Now().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishSuggestionEvent(ctx, event); err != nil {
		uc.Log.Error("continuityUsecase.CreateContinuitySuggestion error publishing lifecycle event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSuggestionIDKey, suggestion.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("continuityUsecase.CreateContinuitySuggestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSuggestionIDKey, suggestion.ID),
		zap.Int(constvars.LoggingCandidateCountKey, len(candidates)),
	)
	response := responses.NewSuggestion(suggestion)
	return &response, nil
}

// definitionsFor annotates the fresh metrics with their catalog definitions
// (display name, unit, normal range). The catalog is advisory here: a
// lookup failure degrades the response instead of failing it.
func (uc *continuityUsecase) definitionsFor(ctx context.Context, metricSet map[string]models.Observation) map[string]models.MetricDefinition {
	if len(metricSet) == 0 {
		return nil
	}

	catalog, err := uc.MetricRepository.FindAll(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("continuityUsecase.definitionsFor error fetching metric catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	definitions := make(map[string]models.MetricDefinition)
	for _, definition := range catalog {
		if _, present := metricSet[definition.Key]; present {
			definitions[definition.Key] = definition
		}
	}
	return definitions
}

// buildReuseAdvice splits a scored template into the reusable observations
// and the gaps, separating required from optional so the UI can block on
// the former only.
func buildReuseAdvice(template *models.AssessmentTemplate, metricSet map[string]models.Observation, result models.MatchResult) responses.ReuseAdvice {
	advice := responses.ReuseAdvice{
		TemplateID:          result.TargetID,
		TemplateName:        result.TargetName,
		ContinuityScore:     result.MatchScore,
		Unscored:            result.Unscored,
		Reusable:            []responses.ReusableMetric{},
		MustCollect:         []string{},
		OptionalUncollected: []string{},
	}

	for _, metricID := range result.MatchedItems {
		advice.Reusable = append(advice.Reusable, responses.ReusableMetric{
			MetricID:    metricID,
			Observation: metricSet[metricID],
		})
	}

	requiredByMetric := make(map[string]bool, len(template.Items))
	for _, item := range template.Items {
		requiredByMetric[item.MetricID] = item.IsRequired
	}
	for _, metricID := range result.UnmatchedItems {
		if requiredByMetric[metricID] {
			advice.MustCollect = append(advice.MustCollect, metricID)
		} else {
			advice.OptionalUncollected = append(advice.OptionalUncollected, metricID)
		}
	}
	return advice
}
