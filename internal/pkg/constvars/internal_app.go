package constvars

type ContextKey string

const (
	ResourcePatients    = "patients"
	ResourceSuggestions = "suggestions"
	ResourceEnrollments = "enrollments"
	ResourceContinuity  = "continuity-suggestions"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"

	DefaultHistoryPage     = 1
	DefaultHistoryPageSize = 10
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CNTY_SVC_"
)
