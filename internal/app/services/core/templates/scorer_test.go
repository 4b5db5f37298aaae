package templates

import (
	"continuity-engine/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func observationFor(metricID string) models.Observation {
	value := 120.0
	return models.Observation{
		ID:        "obs-" + metricID,
		PatientID: "patient-1",
		MetricID:  metricID,
		Value: models.ObservationValue{
			Type:    "numeric",
			Numeric: &value,
		},
		RecordedAt: time.Now(),
	}
}

func metricSetFor(metricIDs ...string) map[string]models.Observation {
	metricSet := make(map[string]models.Observation, len(metricIDs))
	for _, metricID := range metricIDs {
		metricSet[metricID] = observationFor(metricID)
	}
	return metricSet
}

func templateWith(id, name string, items ...models.TemplateItem) models.AssessmentTemplate {
	return models.AssessmentTemplate{ID: id, Name: name, Items: items}
}

func TestScoreTemplate(t *testing.T) {
	t.Run("two of three items matched rounds to 67", func(t *testing.T) {
		template := templateWith("tpl-vitals", "Vitals Check",
			models.TemplateItem{MetricID: "bp_systolic", IsRequired: true},
			models.TemplateItem{MetricID: "bp_diastolic", IsRequired: true},
			models.TemplateItem{MetricID: "weight"},
		)
		metricSet := metricSetFor("bp_systolic", "bp_diastolic")

		result := ScoreTemplate(&template, metricSet)

		assert.Equal(t, 67, result.MatchScore)
		assert.Equal(t, []string{"bp_systolic", "bp_diastolic"}, result.MatchedItems)
		assert.Equal(t, []string{"weight"}, result.UnmatchedItems)
		assert.Equal(t, 100, result.RequiredScore)
		assert.False(t, result.Unscored)
	})

	t.Run("score is 100 only when every item is matched", func(t *testing.T) {
		template := templateWith("tpl", "Full",
			models.TemplateItem{MetricID: "a"},
			models.TemplateItem{MetricID: "b"},
		)

		full := ScoreTemplate(&template, metricSetFor("a", "b"))
		assert.Equal(t, 100, full.MatchScore)
		assert.True(t, full.IsComplete())

		partial := ScoreTemplate(&template, metricSetFor("a"))
		assert.Equal(t, 50, partial.MatchScore)
		assert.False(t, partial.IsComplete())
	})

	t.Run("no matched items scores zero", func(t *testing.T) {
		template := templateWith("tpl", "Empty Match",
			models.TemplateItem{MetricID: "a", IsRequired: true},
		)

		result := ScoreTemplate(&template, metricSetFor("unrelated"))

		assert.Equal(t, 0, result.MatchScore)
		assert.Equal(t, 0, result.RequiredScore)
	})

	t.Run("template without items is unscored", func(t *testing.T) {
		template := templateWith("tpl-empty", "No Items")

		result := ScoreTemplate(&template, metricSetFor("a"))

		assert.True(t, result.Unscored)
		assert.Equal(t, 0, result.MatchScore)
	})

	t.Run("no required items never blocks reuse", func(t *testing.T) {
		template := templateWith("tpl", "Optional Only",
			models.TemplateItem{MetricID: "a"},
			models.TemplateItem{MetricID: "b"},
		)

		result := ScoreTemplate(&template, metricSetFor("a"))

		assert.Equal(t, 100, result.RequiredScore)
	})

	t.Run("score stays within 0 and 100", func(t *testing.T) {
		template := templateWith("tpl", "Bounds",
			models.TemplateItem{MetricID: "a"},
			models.TemplateItem{MetricID: "b"},
			models.TemplateItem{MetricID: "c"},
			models.TemplateItem{MetricID: "d"},
			models.TemplateItem{MetricID: "e"},
			models.TemplateItem{MetricID: "f"},
			models.TemplateItem{MetricID: "g"},
		)

		for _, metricSet := range []map[string]models.Observation{
			metricSetFor(),
			metricSetFor("a"),
			metricSetFor("a", "b", "c"),
			metricSetFor("a", "b", "c", "d", "e", "f", "g"),
		} {
			result := ScoreTemplate(&template, metricSet)
			assert.GreaterOrEqual(t, result.MatchScore, 0)
			assert.LessOrEqual(t, result.MatchScore, 100)
		}
	})

	t.Run("identical inputs yield identical results", func(t *testing.T) {
		template := templateWith("tpl", "Deterministic",
			models.TemplateItem{MetricID: "a", IsRequired: true},
			models.TemplateItem{MetricID: "b"},
		)
		metricSet := metricSetFor("a")

		first := ScoreTemplate(&template, metricSet)
		second := ScoreTemplate(&template, metricSet)

		assert.Equal(t, first, second)
	})
}

func TestRankTemplates(t *testing.T) {
	metricSet := metricSetFor("a", "b")

	t.Run("orders by score then required coverage then name", func(t *testing.T) {
		templateList := []models.AssessmentTemplate{
			templateWith("tpl-1", "Zeta",
				models.TemplateItem{MetricID: "a"},
				models.TemplateItem{MetricID: "b"},
			),
			templateWith("tpl-2", "Alpha",
				models.TemplateItem{MetricID: "a"},
				models.TemplateItem{MetricID: "b"},
			),
			templateWith("tpl-3", "Partial",
				models.TemplateItem{MetricID: "a"},
				models.TemplateItem{MetricID: "missing"},
			),
		}

		results := RankTemplates(templateList, metricSet)

		assert.Len(t, results, 3)
		assert.Equal(t, "tpl-2", results[0].TargetID)
		assert.Equal(t, "tpl-1", results[1].TargetID)
		assert.Equal(t, "tpl-3", results[2].TargetID)
	})

	t.Run("required coverage breaks score ties", func(t *testing.T) {
		templateList := []models.AssessmentTemplate{
			templateWith("tpl-optional", "Same Score A",
				models.TemplateItem{MetricID: "a"},
				models.TemplateItem{MetricID: "missing", IsRequired: true},
			),
			templateWith("tpl-required", "Same Score B",
				models.TemplateItem{MetricID: "a", IsRequired: true},
				models.TemplateItem{MetricID: "missing"},
			),
		}

		results := RankTemplates(templateList, metricSet)

		assert.Equal(t, results[0].MatchScore, results[1].MatchScore)
		assert.Equal(t, "tpl-required", results[0].TargetID)
	})

	t.Run("unscored templates are excluded", func(t *testing.T) {
		templateList := []models.AssessmentTemplate{
			templateWith("tpl-empty", "No Items"),
			templateWith("tpl-full", "Has Items", models.TemplateItem{MetricID: "a"}),
		}

		results := RankTemplates(templateList, metricSet)

		assert.Len(t, results, 1)
		assert.Equal(t, "tpl-full", results[0].TargetID)
	})
}
