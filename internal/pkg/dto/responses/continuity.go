package responses

import "continuity-engine/internal/app/models"

// ReusableMetric pairs a matched template metric with the fresh observation
// that can pre-populate the new assessment instance.
type ReusableMetric struct {
	MetricID    string             `json:"metric_id"`
	Observation models.Observation `json:"observation"`
}

// ReuseAdvice is the operator-facing continuity recommendation for one
// target template.
type ReuseAdvice struct {
	TemplateID          string           `json:"template_id"`
	TemplateName        string           `json:"template_name"`
	ContinuityScore     int              `json:"continuity_score"`
	Unscored            bool             `json:"unscored,omitempty"`
	Reusable            []ReusableMetric `json:"reusable"`
	MustCollect         []string         `json:"must_collect"`
	OptionalUncollected []string         `json:"optional_uncollected"`
}

type ContinuityAdvice struct {
	PatientID           string        `json:"patient_id"`
	ValidityWindowHours int           `json:"validity_window_hours"`
	Advices             []ReuseAdvice `json:"advices"`
}

type FreshMetrics struct {
	PatientID           string                             `json:"patient_id"`
	ValidityWindowHours int                                `json:"validity_window_hours"`
	Metrics             map[string]models.Observation      `json:"metrics"`
	Definitions         map[string]models.MetricDefinition `json:"definitions,omitempty"`
}
