package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/dto/requests"
	"continuity-engine/internal/pkg/dto/responses"
)

// SuggestionFilter narrows history reads. Zero values mean "any"; a zero
// PageSize disables paging.
type SuggestionFilter struct {
	PatientID string
	Status    string
	Page      int
	PageSize  int
}

type SuggestionRepository interface {
	CreateSuggestion(ctx context.Context, suggestion *models.Suggestion) (string, error)
	// FindByID returns (nil, nil) when the suggestion does not exist.
	FindByID(ctx context.Context, suggestionID string) (*models.Suggestion, error)
	FindAll(ctx context.Context, filter SuggestionFilter) ([]models.Suggestion, error)
	// Count ignores the filter's paging fields.
	Count(ctx context.Context, filter SuggestionFilter) (int, error)
	// UpdateIfPending persists the reviewed suggestion only if the stored
	// document is still PENDING. It reports false when another review won
	// the race, so exactly one concurrent review can succeed.
	UpdateIfPending(ctx context.Context, suggestion *models.Suggestion) (bool, error)
}

type SuggestionUsecase interface {
	CreateBillingSuggestion(ctx context.Context, patientID string, request *requests.CreateBillingSuggestion) (*responses.Suggestion, error)
	Approve(ctx context.Context, suggestionID string, request *requests.ApproveSuggestion) (*responses.Suggestion, error)
	Reject(ctx context.Context, suggestionID string, request *requests.RejectSuggestion) (*responses.Suggestion, error)
	FindSuggestionByID(ctx context.Context, suggestionID string) (*responses.Suggestion, error)
	// ListHistory returns the requested page and the unpaged total.
	ListHistory(ctx context.Context, filter SuggestionFilter) ([]responses.Suggestion, int, error)
}
