package models

// Enrollment is created as the side effect of approving a billing-package
// suggestion: one per CPT code declared by the selected program, or a single
// one when the program declares none.
type Enrollment struct {
	ID                 string `json:"id" bson:"_id,omitempty"`
	PatientID          string `json:"patientId" bson:"patientId"`
	SuggestionID       string `json:"suggestionId" bson:"suggestionId"`
	ProgramType        string `json:"programType" bson:"programType"`
	BillingProgramCode string `json:"billingProgramCode" bson:"billingProgramCode"`
	CPTCode            string `json:"cptCode,omitempty" bson:"cptCode,omitempty"`
	Status             string `json:"status" bson:"status"`
	EnrolledBy         string `json:"enrolledBy" bson:"enrolledBy"`
	TimeModel          `bson:",inline"`
}
