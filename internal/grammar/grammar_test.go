package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjunctivo/learning-engine/internal/grammar"
)

func TestEndingTableHas54Entries(t *testing.T) {
	count := 0
	classes := []grammar.EndingClass{grammar.ClassAR, grammar.ClassER, grammar.ClassIR}
	tenses := []grammar.Tense{grammar.PresentSubj, grammar.ImperfectSubjRA, grammar.ImperfectSubjSE}
	for _, c := range classes {
		for _, ts := range tenses {
			for _, p := range grammar.Persons {
				form := grammar.Ending(c, ts, p)
				require.NotEmpty(t, form, "class=%v tense=%v person=%v", c, ts, p)
				count++
			}
		}
	}
	assert.Equal(t, 54, count)
}

func TestIrregularVerbsPresent(t *testing.T) {
	required := []string{
		"ser", "estar", "ir", "haber", "dar", "saber", "ver", "hacer",
		"tener", "poner", "poder", "querer", "venir", "salir", "traer",
		"caer", "conocer",
	}
	for _, name := range required {
		v, ok := grammar.Lookup(name)
		require.True(t, ok, "missing irregular verb %q", name)
		assert.True(t, v.Irregular)
		for _, p := range grammar.Persons {
			form, ok := v.Table[grammar.TenseParadigm{Tense: grammar.PresentSubj, Person: p}]
			require.True(t, ok, "%s missing PRESENT_SUBJ for %v", name, p)
			assert.NotEmpty(t, form)
		}
	}
}

func TestTriggerCatalogCoversAllCategories(t *testing.T) {
	for _, cat := range grammar.AllCategories {
		triggers := grammar.TriggersByCategory(cat)
		require.NotEmpty(t, triggers, "no trigger for category %v", cat)
		for _, tr := range triggers {
			for _, tmpl := range tr.Templates {
				assert.Contains(t, tmpl, "{V}")
				assert.Contains(t, tmpl, "{P}")
			}
		}
	}
}

func TestCategoryWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range grammar.CategoryWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestVerbsForDifficultyIsMonotonic(t *testing.T) {
	beginner := grammar.VerbsForDifficulty(grammar.Beginner)
	expert := grammar.VerbsForDifficulty(grammar.Expert)
	assert.Less(t, len(beginner), len(expert))
	for _, name := range beginner {
		assert.Contains(t, expert, name)
	}
}
