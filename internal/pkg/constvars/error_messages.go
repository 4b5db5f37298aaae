package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"uuid":      "must be a valid UUID",
	"icd10":     "must be a valid ICD-10 code",
	"not_blank": "must contain at least one non-whitespace character",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientTemplateNotFound              = "assessment template not found"
	ErrClientSuggestionNotFound            = "suggestion not found"
	ErrClientSuggestionAlreadyReviewed     = "suggestion already reviewed"
	ErrClientProgramNotCandidate           = "selected program is not among the suggestion candidates"
	ErrClientRejectionReasonRequired       = "rejection reason must not be empty"
	ErrClientStoreUnavailable              = "data store temporarily unavailable, please retry"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed  = "validation failed"

	ErrDevURLParamIDValidationFailed = "invalid %s url parameter"

	// Engine messages
	ErrDevPatientNotFound           = "patient does not exist"
	ErrDevTemplateNotFound          = "assessment template does not exist"
	ErrDevSuggestionNotFound        = "suggestion does not exist"
	ErrDevSuggestionAlreadyReviewed = "suggestion is no longer PENDING"
	ErrDevProgramNotCandidate       = "selected program type is not a candidate of the suggestion"
	ErrDevRejectionReasonBlank      = "rejection reason is blank"
	ErrDevSuggestionReviewLockBusy  = "another review of this suggestion is in flight"
	ErrDevInvalidValidityWindow     = "validity window must be a positive number of hours"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to set data with NX option into redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Server messages
	ErrDevServerProcess          = "error while server processing the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
