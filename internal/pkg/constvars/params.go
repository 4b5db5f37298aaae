package constvars

const (
	URLParamPatientID    = "patient_id"
	URLParamSuggestionID = "suggestion_id"
	URLParamTemplateID   = "template_id"
)

const (
	QueryParamPatientID           = "patient_id"
	QueryParamStatus              = "status"
	QueryParamTemplateID          = "template_id"
	QueryParamValidityWindowHours = "validity_window_hours"
	QueryParamPage                = "page"
	QueryParamPageSize            = "page_size"
)
