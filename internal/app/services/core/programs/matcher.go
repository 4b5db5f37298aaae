package programs

import (
	"continuity-engine/internal/app/models"
	"continuity-engine/internal/pkg/constvars"
	"math"
	"sort"
	"strings"
)

// MatchPrograms ranks billing programs against the patient's coded
// diagnoses. Pure function. Programs with no matched diagnosis are never
// suggested; an empty diagnosis list yields an empty result, not an error.
//
// Score: primary diagnoses weigh double. A program matching every primary
// and secondary diagnosis scores 100; partial coverage scales linearly on
// the weighted total, rounded to the nearest integer.
func MatchPrograms(diagnoses []models.Diagnosis, catalog []models.BillingProgramDefinition) []models.MatchResult {
	if len(diagnoses) == 0 {
		return []models.MatchResult{}
	}

	weightedTotal := 0
	for _, diagnosis := range diagnoses {
		weightedTotal += diagnosisWeight(diagnosis)
	}

	results := make([]models.MatchResult, 0, len(catalog))
	for _, program := range catalog {
		matched := []string{}
		unmatched := []string{}
		weightedMatched := 0
		for _, diagnosis := range diagnoses {
			if diagnosisMatchesProgram(diagnosis, &program) {
				matched = append(matched, diagnosis.Code)
				weightedMatched += diagnosisWeight(diagnosis)
			} else {
				unmatched = append(unmatched, diagnosis.Code)
			}
		}
		if len(matched) == 0 {
			continue
		}

		score := int(math.Round(100 * float64(weightedMatched) / float64(weightedTotal)))
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		results = append(results, models.MatchResult{
			TargetID:       program.ProgramType,
			TargetName:     program.BillingProgramCode,
			MatchedItems:   matched,
			UnmatchedItems: unmatched,
			MatchScore:     score,
		})
	}

	// Stable sort keeps catalog declaration order between equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// MatchedDiagnoses returns the diagnoses matched by at least one program in
// the ranked results, preserving the patient's diagnosis order.
func MatchedDiagnoses(diagnoses []models.Diagnosis, catalog []models.BillingProgramDefinition) []models.Diagnosis {
	matched := []models.Diagnosis{}
	for _, diagnosis := range diagnoses {
		for i := range catalog {
			if diagnosisMatchesProgram(diagnosis, &catalog[i]) {
				matched = append(matched, diagnosis)
				break
			}
		}
	}
	return matched
}

// diagnosisMatchesProgram applies the catalog rules: an exact ICD-10 code
// or a category-level prefix ("M79" matches "M79.3").
func diagnosisMatchesProgram(diagnosis models.Diagnosis, program *models.BillingProgramDefinition) bool {
	for _, rule := range program.DiagnosisMatchRules {
		if rule == "" {
			continue
		}
		if diagnosis.Code == rule || strings.HasPrefix(diagnosis.Code, rule) {
			return true
		}
	}
	return false
}

func diagnosisWeight(diagnosis models.Diagnosis) int {
	if diagnosis.Role == constvars.DiagnosisRolePrimary {
		return constvars.DiagnosisWeightPrimary
	}
	return constvars.DiagnosisWeightSecondary
}
