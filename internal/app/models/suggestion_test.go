package models

import (
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pendingSuggestion() *Suggestion {
	return &Suggestion{
		ID:        "suggestion-1",
		PatientID: "patient-1",
		Kind:      constvars.SuggestionKindBillingPackage,
		Status:    constvars.SuggestionStatusPending,
		CandidatePrograms: []MatchResult{
			{TargetID: "RPM", MatchScore: 100},
			{TargetID: "CCM", MatchScore: 50},
		},
	}
}

func TestSuggestionApprove(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("pending suggestion approves with any candidate", func(t *testing.T) {
		suggestion := pendingSuggestion()

		err := suggestion.Approve("reviewer-1", "CCM", []string{"enrollment-1"}, now)

		assert.NoError(t, err)
		assert.Equal(t, constvars.SuggestionStatusApproved, suggestion.Status)
		assert.Equal(t, "CCM", suggestion.SelectedProgramType)
		assert.Equal(t, "reviewer-1", suggestion.ReviewedBy)
		assert.Equal(t, []string{"enrollment-1"}, suggestion.CreatedEnrollmentIDs)
		assert.Equal(t, now, *suggestion.ReviewedAt)
	})

	t.Run("non-candidate program is rejected without mutation", func(t *testing.T) {
		suggestion := pendingSuggestion()

		err := suggestion.Approve("reviewer-1", "RTM", []string{"enrollment-1"}, now)

		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Equal(t, constvars.SuggestionStatusPending, suggestion.Status)
		assert.Empty(t, suggestion.SelectedProgramType)
	})

	t.Run("approved suggestion cannot be approved again", func(t *testing.T) {
		suggestion := pendingSuggestion()
		assert.NoError(t, suggestion.Approve("reviewer-1", "RPM", []string{"enrollment-1"}, now))

		err := suggestion.Approve("reviewer-2", "CCM", []string{"enrollment-2"}, now.Add(time.Minute))

		assert.True(t, exceptions.IsAlreadyReviewed(err))
		assert.Equal(t, "RPM", suggestion.SelectedProgramType)
		assert.Equal(t, "reviewer-1", suggestion.ReviewedBy)
	})

	t.Run("billing approval requires enrollments", func(t *testing.T) {
		suggestion := pendingSuggestion()

		err := suggestion.Approve("reviewer-1", "RPM", nil, now)

		assert.Error(t, err)
		assert.Equal(t, constvars.SuggestionStatusPending, suggestion.Status)
	})

	t.Run("continuity approval carries no enrollments", func(t *testing.T) {
		suggestion := pendingSuggestion()
		suggestion.Kind = constvars.SuggestionKindContinuity
		suggestion.CandidatePrograms = []MatchResult{
			{TargetID: "tpl-vitals", MatchScore: 67},
		}

		err := suggestion.Approve("reviewer-1", "tpl-vitals", nil, now)

		assert.NoError(t, err)
		assert.Equal(t, constvars.SuggestionStatusApproved, suggestion.Status)
		assert.Equal(t, "tpl-vitals", suggestion.SelectedProgramType)
		assert.Empty(t, suggestion.CreatedEnrollmentIDs)
	})
}

func TestSuggestionReject(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("pending suggestion rejects with a reason", func(t *testing.T) {
		suggestion := pendingSuggestion()

		err := suggestion.Reject("reviewer-1", "patient declined", now)

		assert.NoError(t, err)
		assert.Equal(t, constvars.SuggestionStatusRejected, suggestion.Status)
		assert.Equal(t, "patient declined", suggestion.RejectionReason)
		assert.Equal(t, "reviewer-1", suggestion.ReviewedBy)
	})

	t.Run("whitespace-only reason is rejected without mutation", func(t *testing.T) {
		suggestion := pendingSuggestion()

		err := suggestion.Reject("reviewer-1", " \t ", now)

		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Equal(t, constvars.SuggestionStatusPending, suggestion.Status)
	})

	t.Run("rejected suggestion cannot be approved", func(t *testing.T) {
		suggestion := pendingSuggestion()
		assert.NoError(t, suggestion.Reject("reviewer-1", "duplicate", now))

		err := suggestion.Approve("reviewer-2", "RPM", []string{"enrollment-1"}, now.Add(time.Minute))

		assert.True(t, exceptions.IsAlreadyReviewed(err))
		assert.Equal(t, constvars.SuggestionStatusRejected, suggestion.Status)
	})
}

func TestSuggestionHasCandidate(t *testing.T) {
	suggestion := pendingSuggestion()

	assert.True(t, suggestion.HasCandidate("RPM"))
	assert.True(t, suggestion.HasCandidate("CCM"))
	assert.False(t, suggestion.HasCandidate("RTM"))
	assert.False(t, suggestion.HasCandidate(""))
}
