package constvars

// Suggestion lifecycle
const (
	SuggestionStatusPending  = "PENDING"
	SuggestionStatusApproved = "APPROVED"
	SuggestionStatusRejected = "REJECTED"

	SuggestionKindBillingPackage = "BILLING_PACKAGE"
	SuggestionKindContinuity     = "CONTINUITY"

	SuggestionMetadataValidityWindowHours = "validityWindowHours"
)

// Diagnosis roles
const (
	DiagnosisRolePrimary   = "primary"
	DiagnosisRoleSecondary = "secondary"
)

// Diagnosis match weights. The 2x primary weighting mirrors the
// behaviour observed in the legacy portal; adjust here once the
// billing team confirms the canonical formula.
const (
	DiagnosisWeightPrimary   = 2
	DiagnosisWeightSecondary = 1
)

// Enrollment statuses
const (
	EnrollmentStatusActive = "ACTIVE"
)

// Observation value kinds
const (
	ObservationValueNumeric     = "numeric"
	ObservationValueText        = "text"
	ObservationValueBoolean     = "boolean"
	ObservationValueCategorical = "categorical"
	ObservationValueOrdinal     = "ordinal"
	ObservationValueDate        = "date"
	ObservationValueTime        = "time"
	ObservationValueDateTime    = "datetime"
	ObservationValueStructured  = "structured"
)

const (
	ReviewLockKeyFormat         = "suggestion:review:%s"
	ReviewLockExpirationSeconds = 30

	ProgramCatalogCacheKey = "catalog:billing_programs"
	MetricCatalogCacheKey  = "catalog:metric_definitions"
	TemplateCacheKeyFormat = "catalog:template:%s"
)
