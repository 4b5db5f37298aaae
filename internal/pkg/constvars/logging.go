package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingDataKey             = "data"
	LoggingQueryParamsKey      = "query_params"
	LoggingResponseKey         = "response"
	LoggingRequestKey          = "request"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingPatientIDKey        = "patient_id"
	LoggingSuggestionIDKey     = "suggestion_id"
	LoggingTemplateIDKey       = "template_id"
	LoggingProgramTypeKey      = "program_type"
	LoggingReviewerIDKey       = "reviewer_id"
	LoggingMetricCountKey      = "metric_count"
	LoggingCandidateCountKey   = "candidate_count"
	LoggingEnrollmentCountKey  = "enrollment_count"
	LoggingObservationCountKey = "observation_count"
	LoggingValidityWindowKey   = "validity_window"
	LoggingEventKey            = "event"
	LoggingRedisKey            = "redis_key"
	LoggingQueueNameKey        = "queue_name"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
)
