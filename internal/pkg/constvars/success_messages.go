package constvars

const (
	FindFreshMetricsSuccessMessage      = "Successfully resolved fresh metrics"
	FindContinuityAdviceSuccessMessage  = "Successfully computed continuity advice"
	CreateSuggestionSuccessMessage      = "Successfully created suggestion"
	FindSuggestionSuccessMessage        = "Successfully fetched suggestion"
	FindSuggestionHistorySuccessMessage = "Successfully fetched suggestion history"
	ApproveSuggestionSuccessMessage     = "Successfully approved suggestion"
	RejectSuggestionSuccessMessage      = "Successfully rejected suggestion"
	FindEnrollmentsSuccessMessage       = "Successfully fetched enrollments"
	NoBillingProgramMatchedMessage      = "No billing program matched the patient diagnoses"
	NoTemplateMatchedMessage            = "No assessment template matched the patient's fresh metrics"
	HealthCheckSuccessMessage           = "OK"
)
