package models

import "time"

// ObservationValue is the tagged value union of an observation. Exactly one
// payload field is set, selected by Type (constvars.ObservationValue*).
type ObservationValue struct {
	Type        string                 `json:"type" bson:"type"`
	Numeric     *float64               `json:"numeric,omitempty" bson:"numeric,omitempty"`
	Text        *string                `json:"text,omitempty" bson:"text,omitempty"`
	Boolean     *bool                  `json:"boolean,omitempty" bson:"boolean,omitempty"`
	Categorical *string                `json:"categorical,omitempty" bson:"categorical,omitempty"`
	Ordinal     *int                   `json:"ordinal,omitempty" bson:"ordinal,omitempty"`
	Date        *time.Time             `json:"date,omitempty" bson:"date,omitempty"`
	Time        *string                `json:"time,omitempty" bson:"time,omitempty"`
	DateTime    *time.Time             `json:"datetime,omitempty" bson:"datetime,omitempty"`
	Structured  map[string]interface{} `json:"structured,omitempty" bson:"structured,omitempty"`
}

// Observation is immutable once recorded. Scoring never edits one in place;
// a newer recording for the same metric supersedes it by recency.
type Observation struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	PatientID  string           `json:"patientId" bson:"patientId"`
	MetricID   string           `json:"metricId" bson:"metricId"`
	Value      ObservationValue `json:"value" bson:"value"`
	RecordedAt time.Time        `json:"recordedAt" bson:"recordedAt"`
	Source     string           `json:"source" bson:"source"`
}
