package programs

import (
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func diagnosis(code, role string) models.Diagnosis {
	return models.Diagnosis{Code: code, Role: role}
}

func program(programType string, rules ...string) models.BillingProgramDefinition {
	return models.BillingProgramDefinition{
		ProgramType:         programType,
		BillingProgramCode:  programType + "-code",
		DiagnosisMatchRules: rules,
	}
}

func TestMatchPrograms(t *testing.T) {
	t.Run("category prefix rule matches subcategory code", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{program("RTM", "M79")}
		diagnoses := []models.Diagnosis{diagnosis("M79.3", constvars.DiagnosisRolePrimary)}

		results := MatchPrograms(diagnoses, catalog)

		assert.Len(t, results, 1)
		assert.Equal(t, "RTM", results[0].TargetID)
		assert.Equal(t, 100, results[0].MatchScore)
		assert.Equal(t, []string{"M79.3"}, results[0].MatchedItems)
	})

	t.Run("exact code rule matches", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{program("CCM", "E11.9")}
		diagnoses := []models.Diagnosis{diagnosis("E11.9", constvars.DiagnosisRolePrimary)}

		results := MatchPrograms(diagnoses, catalog)

		assert.Len(t, results, 1)
		assert.Equal(t, 100, results[0].MatchScore)
	})

	t.Run("programs with no matched diagnosis are excluded", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{
			program("RPM", "I10"),
			program("RTM", "M79"),
		}
		diagnoses := []models.Diagnosis{diagnosis("I10", constvars.DiagnosisRolePrimary)}

		results := MatchPrograms(diagnoses, catalog)

		assert.Len(t, results, 1)
		assert.Equal(t, "RPM", results[0].TargetID)
	})

	t.Run("empty diagnosis list yields empty result", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{program("RPM", "I10")}

		results := MatchPrograms(nil, catalog)

		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("primary diagnoses weigh double", func(t *testing.T) {
		// Weighted total: primary I10 (2) + secondary E11.9 (1) = 3.
		// RPM matches only the primary: 2/3 -> 67. CCM matches only the
		// secondary: 1/3 -> 33.
		catalog := []models.BillingProgramDefinition{
			program("RPM", "I10"),
			program("CCM", "E11"),
		}
		diagnoses := []models.Diagnosis{
			diagnosis("I10", constvars.DiagnosisRolePrimary),
			diagnosis("E11.9", constvars.DiagnosisRoleSecondary),
		}

		results := MatchPrograms(diagnoses, catalog)

		assert.Len(t, results, 2)
		assert.Equal(t, "RPM", results[0].TargetID)
		assert.Equal(t, 67, results[0].MatchScore)
		assert.Equal(t, "CCM", results[1].TargetID)
		assert.Equal(t, 33, results[1].MatchScore)
	})

	t.Run("unmatched codes are reported per program", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{program("RPM", "I10")}
		diagnoses := []models.Diagnosis{
			diagnosis("I10", constvars.DiagnosisRolePrimary),
			diagnosis("M79.3", constvars.DiagnosisRoleSecondary),
		}

		results := MatchPrograms(diagnoses, catalog)

		assert.Equal(t, []string{"I10"}, results[0].MatchedItems)
		assert.Equal(t, []string{"M79.3"}, results[0].UnmatchedItems)
	})

	t.Run("equal scores keep catalog declaration order", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{
			program("RPM", "I10"),
			program("CCM", "I10"),
			program("RTM", "I10"),
		}
		diagnoses := []models.Diagnosis{diagnosis("I10", constvars.DiagnosisRolePrimary)}

		results := MatchPrograms(diagnoses, catalog)

		assert.Len(t, results, 3)
		assert.Equal(t, "RPM", results[0].TargetID)
		assert.Equal(t, "CCM", results[1].TargetID)
		assert.Equal(t, "RTM", results[2].TargetID)
	})

	t.Run("blank rules never match", func(t *testing.T) {
		catalog := []models.BillingProgramDefinition{program("RPM", "")}
		diagnoses := []models.Diagnosis{diagnosis("I10", constvars.DiagnosisRolePrimary)}

		results := MatchPrograms(diagnoses, catalog)

		assert.Empty(t, results)
	})
}

func TestMatchedDiagnoses(t *testing.T) {
	catalog := []models.BillingProgramDefinition{
		program("RPM", "I10"),
		program("RTM", "M79"),
	}
	diagnoses := []models.Diagnosis{
		diagnosis("M79.3", constvars.DiagnosisRoleSecondary),
		diagnosis("I10", constvars.DiagnosisRolePrimary),
		diagnosis("Z99.9", constvars.DiagnosisRoleSecondary),
	}

	matched := MatchedDiagnoses(diagnoses, catalog)

	assert.Len(t, matched, 2)
	assert.Equal(t, "M79.3", matched[0].Code)
	assert.Equal(t, "I10", matched[1].Code)
}
