// Package validate grades a learner's submitted conjugation against the
// expected form, classifying a wrong answer into one of a fixed set of
// mistake kinds so the caller can surface a targeted hint instead of a
// bare pass/fail.
package validate

import (
	"strings"

	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// Context carries everything Validate needs to classify a submission.
// Verb, Tense, and Person identify the exercise the learner was asked to
// conjugate; Expected is the canonical answer and Alternatives any other
// forms accepted as correct (e.g. both vosotros and ustedes phrasing is
// never ambiguous here, but some verbs may accept a secondary dialectal
// form). Submitted is the learner's raw input, unnormalized.
type Context struct {
	Verb         string
	Tense        grammar.Tense
	Person       grammar.Person
	Expected     string
	Alternatives []string
	Submitted    string
}

// Result is the outcome of grading one submission.
type Result struct {
	Correct    bool
	Kind       ErrorKind
	Suggestion string
}

// Validate grades ctx.Submitted against ctx.Expected and ctx.Alternatives,
// classifying any mismatch by the first rule in priority order that
// matches:
//
//  1. accent-only difference
//  2. indicative/preterite mood confusion
//  3. correct form, wrong person
//  4. correct form, wrong tense
//  5. missing a required stem change
//  6. missing a required spelling change
//  7. right stem, wrong ending
//  8. unrecognized
func Validate(ctx Context) Result {
	submitted := normalize(ctx.Submitted)
	accepted := append([]string{ctx.Expected}, ctx.Alternatives...)

	for _, form := range accepted {
		if submitted == normalize(form) {
			return Result{Correct: true, Kind: None}
		}
	}

	submittedFolded := normalizeIgnoringAccents(ctx.Submitted)
	for _, form := range accepted {
		if submittedFolded == normalizeIgnoringAccents(form) {
			return classified(AccentOnly)
		}
	}

	v, ok := grammar.Lookup(ctx.Verb)
	if !ok {
		return classified(Unrecognized)
	}

	if kind, matched := classifyAgainstVerb(v, ctx.Tense, ctx.Person, submittedFolded); matched {
		return classified(kind)
	}

	return classified(Unrecognized)
}

func classified(kind ErrorKind) Result {
	return Result{Correct: false, Kind: kind, Suggestion: Suggestion(kind)}
}

// classifyAgainstVerb runs the verb-aware tiers of the classification
// cascade (mood confusion through ending mismatch) against a
// diacritic-folded submission.
func classifyAgainstVerb(v grammar.Verb, tense grammar.Tense, person grammar.Person, submittedFolded string) (ErrorKind, bool) {
	if form := presentIndicative(v, person); form != "" && normalizeIgnoringAccents(form) == submittedFolded {
		return MoodConfusion, true
	}
	if form := preterite(v, person); form != "" && normalizeIgnoringAccents(form) == submittedFolded {
		return MoodConfusion, true
	}

	for _, p := range grammar.Persons {
		if p == person {
			continue
		}
		form, err := conjugate.Conjugate(v.Infinitive, tense, p)
		if err == nil && normalizeIgnoringAccents(form) == submittedFolded {
			return WrongPerson, true
		}
	}

	for _, t := range []grammar.Tense{grammar.PresentSubj, grammar.ImperfectSubjRA, grammar.ImperfectSubjSE} {
		if t == tense {
			continue
		}
		form, err := conjugate.Conjugate(v.Infinitive, t, person)
		if err == nil && normalizeIgnoringAccents(form) == submittedFolded {
			return WrongTense, true
		}
	}

	ending := grammar.Ending(v.Class, tense, person)

	// Stem-change detection works off v.Present1SGStem / v.Infinitive
	// directly, and spelling-change detection off conjugate.Stem with the
	// spelling pass switched off; neither consults v.Table, so they apply
	// whether or not this (tense, person) happens to be stored verbatim
	// in v.Table (e.g. querer's PRESENT_SUBJ table still reflects a real
	// e→ie stem change a learner can forget to apply). Verbs with no
	// meaningful unchanged stem (ser, estar, ir, haber, dar, ver, saber)
	// simply carry StemChange/Spelling == none, so these tiers never
	// fire for them.
	if v.StemChange != grammar.NoStemChange {
		unchangedStem := unchangedStemFor(v)
		if form := unchangedStem + ending; normalizeIgnoringAccents(form) == submittedFolded {
			return StemChangeMissing, true
		}
	}

	if v.Spelling != grammar.NoSpellingChange {
		stemWithoutSpelling := stemBeforeSpelling(v, tense, person)
		if form := stemWithoutSpelling + ending; normalizeIgnoringAccents(form) == submittedFolded {
			return SpellingChangeMissing, true
		}
	}

	// A fully tabulated form (conjugate.conjugateVerb returns v.Table's
	// entry directly, never composing stem+ending) has no "correct stem"
	// in the compositional sense, so the ending-mismatch prefix check
	// below would compare against a stem that was never actually used to
	// produce the answer. Stop here rather than guess.
	if _, tabulated := v.Table[grammar.TenseParadigm{Tense: tense, Person: person}]; tabulated {
		return Unrecognized, false
	}

	correctStem := conjugate.Stem(v, tense, person)
	if strings.HasPrefix(submittedFolded, normalizeIgnoringAccents(correctStem)) {
		return EndingMismatch, true
	}

	return Unrecognized, false
}

// unchangedStemFor returns a verb's stem as if no stem-change pattern had
// been applied, i.e. the plain infinitive or present-1SG stem. Used to
// recognize a learner who conjugated a stem-changing verb as if it were
// regular (piensa -> pensa, not pienso's correct stem).
func unchangedStemFor(v grammar.Verb) string {
	if v.Present1SGStem != "" {
		return v.Present1SGStem
	}
	return v.Infinitive[:len(v.Infinitive)-2]
}

// stemBeforeSpelling returns the stem Validate would expect if the verb's
// spelling rule had not been applied, reusing conjugate.Stem's
// stem-change pass but skipping the spelling pass.
func stemBeforeSpelling(v grammar.Verb, tense grammar.Tense, person grammar.Person) string {
	withoutSpelling := v
	withoutSpelling.Spelling = grammar.NoSpellingChange
	return conjugate.Stem(withoutSpelling, tense, person)
}
