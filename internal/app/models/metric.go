package models

type MetricRange struct {
	Low  *float64 `json:"low,omitempty" bson:"low,omitempty"`
	High *float64 `json:"high,omitempty" bson:"high,omitempty"`
}

// MetricDefinition is read-only reference data for the engine.
type MetricDefinition struct {
	ID string `json:"id" bson:"_id,omitempty"`

	// Key is the stable metric identifier that observations and template
	// items carry as their metricId; ID is only the storage handle.
	Key         string       `json:"key" bson:"key"`
	DisplayName string       `json:"displayName" bson:"displayName"`
	ValueType   string       `json:"valueType" bson:"valueType"`
	Unit        string       `json:"unit,omitempty" bson:"unit,omitempty"`
	NormalRange *MetricRange `json:"normalRange,omitempty" bson:"normalRange,omitempty"`
}
