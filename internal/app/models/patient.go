package models

type Patient struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	FullName  string      `json:"fullName" bson:"fullName"`
	Diagnoses []Diagnosis `json:"diagnoses" bson:"diagnoses"`
	TimeModel `bson:",inline"`
}
