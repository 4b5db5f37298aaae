package requests

// CreateBillingSuggestion triggers the diagnosis-to-program matcher for a
// patient. Diagnoses may be omitted, in which case the patient's coded
// diagnoses on record are used.
type CreateBillingSuggestion struct {
	Diagnoses []DiagnosisInput `json:"diagnoses" validate:"omitempty,dive"`
}

type DiagnosisInput struct {
	Code    string `json:"code" validate:"required,icd10"`
	Display string `json:"display"`
	Role    string `json:"role" validate:"required,oneof=primary secondary"`
}

type ApproveSuggestion struct {
	ReviewerID  string `json:"reviewer_id" validate:"required"`
	ProgramType string `json:"program_type" validate:"required"`
}

type RejectSuggestion struct {
	ReviewerID string `json:"reviewer_id" validate:"required"`
	Reason     string `json:"reason" validate:"required,not_blank"`
}
