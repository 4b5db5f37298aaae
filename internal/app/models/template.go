package models

type TemplateItem struct {
	MetricID     string `json:"metricId" bson:"metricId"`
	IsRequired   bool   `json:"isRequired" bson:"isRequired"`
	DisplayOrder int    `json:"displayOrder" bson:"displayOrder"`
}

// AssessmentTemplate is read-only reference data; the engine only reads Items.
type AssessmentTemplate struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Name           string         `json:"name" bson:"name"`
	IsStandardized bool           `json:"isStandardized" bson:"isStandardized"`
	Items          []TemplateItem `json:"items" bson:"items"`
}
