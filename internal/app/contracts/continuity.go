package contracts

import (
	"context"
	"continuity-engine/internal/pkg/dto/responses"
	"time"
)

type ContinuityUsecase interface {
	// AdviseReuse ranks templates by how much fresh patient data each can
	// reuse. When templateID is non-empty only that template is advised,
	// even if it is unscored.
	AdviseReuse(ctx context.Context, patientID, templateID string, validityWindow time.Duration) (*responses.ContinuityAdvice, error)
	ResolveFreshMetrics(ctx context.Context, patientID string, validityWindow time.Duration) (*responses.FreshMetrics, error)
	// CreateContinuitySuggestion persists a PENDING CONTINUITY suggestion
	// whose candidates are the ranked template match results. It returns
	// (nil, nil) when no template produced a rankable match.
	CreateContinuitySuggestion(ctx context.Context, patientID string, validityWindow time.Duration) (*responses.Suggestion, error)
}
