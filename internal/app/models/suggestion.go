package models

import (
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"strings"
	"time"
)

// Suggestion is the one durable record this engine owns. It is created
// PENDING, reviewed exactly once (approve or reject, both terminal) and
// never deleted, so history reads always see the full audit trail.
type Suggestion struct {
	ID                   string            `json:"id" bson:"_id,omitempty"`
	PatientID            string            `json:"patientId" bson:"patientId"`
	Kind                 string            `json:"kind" bson:"kind"`
	Status               string            `json:"status" bson:"status"`
	CandidatePrograms    []MatchResult     `json:"candidatePrograms" bson:"candidatePrograms"`
	MatchedDiagnoses     []Diagnosis       `json:"matchedDiagnoses" bson:"matchedDiagnoses"`
	Metadata             map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	SelectedProgramType  string            `json:"selectedProgramType,omitempty" bson:"selectedProgramType,omitempty"`
	RejectionReason      string            `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	ReviewedAt           *time.Time        `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`
	ReviewedBy           string            `json:"reviewedBy,omitempty" bson:"reviewedBy,omitempty"`
	CreatedEnrollmentIDs []string          `json:"createdEnrollmentIds,omitempty" bson:"createdEnrollmentIds,omitempty"`
	TimeModel            `bson:",inline"`
}

func (s *Suggestion) IsPending() bool {
	return s.Status == constvars.SuggestionStatusPending
}

// HasCandidate reports whether candidateID is among the persisted ranked
// candidates: a program type for BILLING_PACKAGE suggestions, a template
// ID for CONTINUITY ones.
func (s *Suggestion) HasCandidate(candidateID string) bool {
	for _, candidate := range s.CandidatePrograms {
		if candidate.TargetID == candidateID {
			return true
		}
	}
	return false
}

// Approve transitions PENDING -> APPROVED. It validates the transition and
// the selected candidate but leaves enrollment creation to the caller,
// which records the resulting IDs here. Only BILLING_PACKAGE approvals
// carry enrollments; a CONTINUITY approval just records the chosen
// template. The receiver is only mutated on success.
func (s *Suggestion) Approve(reviewerID, candidateID string, enrollmentIDs []string, reviewedAt time.Time) error {
	if !s.IsPending() {
		return exceptions.ErrSuggestionAlreadyReviewed(nil)
	}
	if candidateID == "" || !s.HasCandidate(candidateID) {
		return exceptions.ErrInvalidProgramSelection(nil)
	}
	if s.Kind == constvars.SuggestionKindBillingPackage && len(enrollmentIDs) == 0 {
		return exceptions.ErrServerProcess(nil)
	}

	s.Status = constvars.SuggestionStatusApproved
	s.SelectedProgramType = candidateID
	s.CreatedEnrollmentIDs = enrollmentIDs
	s.ReviewedAt = &reviewedAt
	s.ReviewedBy = reviewerID
	s.UpdatedAt = reviewedAt
	return nil
}

// Reject transitions PENDING -> REJECTED. The reason must contain at least
// one non-whitespace character; UI layers may enforce more.
func (s *Suggestion) Reject(reviewerID, reason string, reviewedAt time.Time) error {
	if !s.IsPending() {
		return exceptions.ErrSuggestionAlreadyReviewed(nil)
	}
	if strings.TrimSpace(reason) == "" {
		return exceptions.ErrRejectionReasonBlank(nil)
	}

	s.Status = constvars.SuggestionStatusRejected
	s.RejectionReason = reason
	s.ReviewedAt = &reviewedAt
	s.ReviewedBy = reviewerID
	s.UpdatedAt = reviewedAt
	return nil
}
