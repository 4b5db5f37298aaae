package templates

import (
	"continuity-engine/internal/app/models"
	"math"
	"sort"
)

// ScoreTemplate computes how well metricSet covers the template's items.
// Pure function: identical inputs always yield the identical result.
//
// A template with zero items is flagged Unscored with score 0; it stays out
// of ranked lists but is still returned when requested by ID.
func ScoreTemplate(template *models.AssessmentTemplate, metricSet map[string]models.Observation) models.MatchResult {
	result := models.MatchResult{
		TargetID:       template.ID,
		TargetName:     template.Name,
		MatchedItems:   []string{},
		UnmatchedItems: []string{},
	}

	if len(template.Items) == 0 {
		result.Unscored = true
		return result
	}

	requiredTotal := 0
	requiredMatched := 0
	for _, item := range template.Items {
		_, matched := metricSet[item.MetricID]
		if matched {
			result.MatchedItems = append(result.MatchedItems, item.MetricID)
		} else {
			result.UnmatchedItems = append(result.UnmatchedItems, item.MetricID)
		}
		if item.IsRequired {
			requiredTotal++
			if matched {
				requiredMatched++
			}
		}
	}

	result.MatchScore = roundPercentage(len(result.MatchedItems), len(template.Items))
	if requiredTotal > 0 {
		result.RequiredScore = roundPercentage(requiredMatched, requiredTotal)
	} else {
		// No required items means nothing blocks reuse.
		result.RequiredScore = 100
	}
	return result
}

// RankTemplates scores every template against metricSet and orders them:
// score descending, then required-item coverage descending, then name
// ascending. Unscored templates are excluded.
func RankTemplates(templateList []models.AssessmentTemplate, metricSet map[string]models.Observation) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(templateList))
	for i := range templateList {
		result := ScoreTemplate(&templateList[i], metricSet)
		if result.Unscored {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		if results[i].RequiredScore != results[j].RequiredScore {
			return results[i].RequiredScore > results[j].RequiredScore
		}
		return results[i].TargetName < results[j].TargetName
	})
	return results
}

func roundPercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
