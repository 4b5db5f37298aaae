package models

// MatchResult is derived, never persisted on its own; suggestions embed the
// ranked candidate list so the operator can later pick any candidate, not
// just the top one.
type MatchResult struct {
	TargetID       string   `json:"targetId" bson:"targetId"`
	TargetName     string   `json:"targetName,omitempty" bson:"targetName,omitempty"`
	MatchedItems   []string `json:"matchedItems" bson:"matchedItems"`
	UnmatchedItems []string `json:"unmatchedItems" bson:"unmatchedItems"`
	MatchScore     int      `json:"matchScore" bson:"matchScore"`

	// Unscored marks a target with zero declared requirements. Such a
	// result is excluded from ranked lists but still returned when the
	// target is requested by ID.
	Unscored bool `json:"unscored,omitempty" bson:"unscored,omitempty"`

	// RequiredScore is the coverage of required items only, used as the
	// secondary ranking key for templates.
	RequiredScore int `json:"requiredScore,omitempty" bson:"requiredScore,omitempty"`
}

// IsComplete reports full coverage: every declared requirement matched.
func (m MatchResult) IsComplete() bool {
	return !m.Unscored && len(m.UnmatchedItems) == 0 && m.MatchScore == 100
}
