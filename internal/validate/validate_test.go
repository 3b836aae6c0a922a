package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subjunctivo/learning-engine/internal/grammar"
	"github.com/subjunctivo/learning-engine/internal/validate"
)

func ctx(verb string, tense grammar.Tense, person grammar.Person, expected, submitted string) validate.Context {
	return validate.Context{
		Verb:      verb,
		Tense:     tense,
		Person:    person,
		Expected:  expected,
		Submitted: submitted,
	}
}

func TestValidateExactMatch(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hable"))
	assert.True(t, r.Correct)
	assert.Equal(t, validate.None, r.Kind)
}

func TestValidateExactMatchIsCaseAndWhitespaceInsensitive(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "  HABLE  "))
	assert.True(t, r.Correct)
}

func TestValidateAlternativeFormAccepted(t *testing.T) {
	c := ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hables")
	c.Alternatives = []string{"hables"}
	r := validate.Validate(c)
	assert.True(t, r.Correct)
}

func TestValidateAccentOnly(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.ImperfectSubjRA, grammar.FirstPl, "habláramos", "hablaramos"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.AccentOnly, r.Kind)
}

func TestValidateMoodConfusionIndicative(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablo"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.MoodConfusion, r.Kind)
}

func TestValidateMoodConfusionPreterite(t *testing.T) {
	r := validate.Validate(ctx("comer", grammar.PresentSubj, grammar.ThirdSg, "coma", "comió"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.MoodConfusion, r.Kind)
}

func TestValidateWrongPerson(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hables"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.WrongPerson, r.Kind)
}

func TestValidateWrongTense(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablara"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.WrongTense, r.Kind)
}

func TestValidateStemChangeMissing(t *testing.T) {
	r := validate.Validate(ctx("querer", grammar.PresentSubj, grammar.FirstSg, "quiera", "quera"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.StemChangeMissing, r.Kind)
}

func TestValidateSpellingChangeMissing(t *testing.T) {
	r := validate.Validate(ctx("buscar", grammar.PresentSubj, grammar.FirstSg, "busque", "busce"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.SpellingChangeMissing, r.Kind)
}

func TestValidateEndingMismatch(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablas"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.EndingMismatch, r.Kind)
}

func TestValidateUnrecognized(t *testing.T) {
	r := validate.Validate(ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "xyzzy"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.Unrecognized, r.Kind)
}

func TestValidateUnknownVerbFallsBackToUnrecognized(t *testing.T) {
	r := validate.Validate(ctx("glerb", grammar.PresentSubj, grammar.FirstSg, "glerbe", "glerbo"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.Unrecognized, r.Kind)
}

func TestValidateTabulatedIrregularSkipsStemChecks(t *testing.T) {
	r := validate.Validate(ctx("ser", grammar.PresentSubj, grammar.FirstSg, "sea", "sa"))
	assert.False(t, r.Correct)
	assert.Equal(t, validate.Unrecognized, r.Kind)
}

func TestSuggestionIsPopulatedForEveryMistakeKind(t *testing.T) {
	cases := []validate.Context{
		ctx("hablar", grammar.ImperfectSubjRA, grammar.FirstPl, "habláramos", "hablaramos"),
		ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablo"),
		ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hables"),
		ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablara"),
		ctx("querer", grammar.PresentSubj, grammar.FirstSg, "quiera", "quera"),
		ctx("buscar", grammar.PresentSubj, grammar.FirstSg, "busque", "busce"),
		ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "hablas"),
		ctx("hablar", grammar.PresentSubj, grammar.FirstSg, "hable", "xyzzy"),
	}
	for _, c := range cases {
		r := validate.Validate(c)
		assert.NotEmpty(t, r.Suggestion, "%+v", c)
	}
}
