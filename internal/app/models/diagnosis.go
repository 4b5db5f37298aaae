package models

// Diagnosis is an ICD-10 coded condition attached to a patient record.
// Role is either primary or secondary (constvars.DiagnosisRole*).
type Diagnosis struct {
	Code    string `json:"code" bson:"code"`
	Display string `json:"display" bson:"display"`
	Role    string `json:"role" bson:"role"`
}
