package constvars

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionObservations = "observations"
	MongoCollectionMetrics      = "metric_definitions"
	MongoCollectionTemplates    = "assessment_templates"
	MongoCollectionPrograms     = "billing_program_definitions"
	MongoCollectionSuggestions  = "suggestions"
	MongoCollectionEnrollments  = "enrollments"
)
