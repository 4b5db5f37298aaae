package models

// BillingProgramDefinition is a catalog entry curated by billing admins
// elsewhere. DiagnosisMatchRules holds exact ICD-10 codes or code prefixes
// (a category-level rule like "M79" matches "M79.3"). DisplayOrder preserves
// catalog declaration order for deterministic tie-breaking.
type BillingProgramDefinition struct {
	ID                  string   `json:"id" bson:"_id,omitempty"`
	ProgramType         string   `json:"programType" bson:"programType"`
	BillingProgramCode  string   `json:"billingProgramCode" bson:"billingProgramCode"`
	CPTCodes            []string `json:"cptCodes" bson:"cptCodes"`
	DiagnosisMatchRules []string `json:"diagnosisMatchRules" bson:"diagnosisMatchRules"`
	Category            string   `json:"category" bson:"category"`
	DisplayOrder        int      `json:"displayOrder" bson:"displayOrder"`
}
