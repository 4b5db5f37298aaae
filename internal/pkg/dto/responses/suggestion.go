package responses

import (
	"continuity-engine/internal/app/models"
	"time"
)

type Suggestion struct {
	ID                   string               `json:"id"`
	PatientID            string               `json:"patient_id"`
	Kind                 string               `json:"kind"`
	Status               string               `json:"status"`
	CandidatePrograms    []models.MatchResult `json:"candidate_programs"`
	MatchedDiagnoses     []models.Diagnosis   `json:"matched_diagnoses"`
	Metadata             map[string]string    `json:"metadata,omitempty"`
	SelectedProgramType  string               `json:"selected_program_type,omitempty"`
	RejectionReason      string               `json:"rejection_reason,omitempty"`
	ReviewedAt           *time.Time           `json:"reviewed_at,omitempty"`
	ReviewedBy           string               `json:"reviewed_by,omitempty"`
	CreatedEnrollmentIDs []string             `json:"created_enrollment_ids,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
}

func NewSuggestion(model *models.Suggestion) Suggestion {
	return Suggestion{
		ID:                   model.ID,
		PatientID:            model.PatientID,
		Kind:                 model.Kind,
		Status:               model.Status,
		CandidatePrograms:    model.CandidatePrograms,
		MatchedDiagnoses:     model.MatchedDiagnoses,
		Metadata:             model.Metadata,
		SelectedProgramType:  model.SelectedProgramType,
		RejectionReason:      model.RejectionReason,
		ReviewedAt:           model.ReviewedAt,
		ReviewedBy:           model.ReviewedBy,
		CreatedEnrollmentIDs: model.CreatedEnrollmentIDs,
		CreatedAt:            model.CreatedAt,
	}
}

func NewSuggestionList(suggestionModels []models.Suggestion) []Suggestion {
	suggestions := make([]Suggestion, 0, len(suggestionModels))
	for i := range suggestionModels {
		suggestions = append(suggestions, NewSuggestion(&suggestionModels[i]))
	}
	return suggestions
}
