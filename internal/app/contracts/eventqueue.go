package contracts

import "context"

// SuggestionEvent is published on suggestion lifecycle transitions for
// downstream notification and audit consumers.
type SuggestionEvent struct {
	Event        string `json:"event"`
	SuggestionID string `json:"suggestion_id"`
	PatientID    string `json:"patient_id"`
	Status       string `json:"status"`
	ReviewedBy   string `json:"reviewed_by,omitempty"`
	OccurredAt   string `json:"occurred_at"`
}

type SuggestionEventPublisher interface {
	PublishSuggestionEvent(ctx context.Context, event SuggestionEvent) error
}
