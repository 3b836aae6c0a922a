package subjunctive

import (
	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/generate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
	"github.com/subjunctivo/learning-engine/internal/validate"
)

// Conjugate returns the subjunctive form for (verb, tense, person). It
// returns a *UnknownVerbError for any verb outside the declared set.
//
// Conjugate is pure and deterministic; it may be called concurrently from
// any number of goroutines without coordination.
func Conjugate(verb string, tense Tense, person Person) (string, error) {
	form, err := conjugate.Conjugate(verb, tense, person)
	return form, wrapErr("Conjugate", err)
}

// FullTable returns every person's form for (verb, tense).
func FullTable(verb string, tense Tense) (map[Person]string, error) {
	table, err := conjugate.FullTable(verb, tense)
	return table, wrapErr("FullTable", err)
}

// Validate grades a submission against an expected form and its
// alternatives, classifying a mismatch into one of the fixed ErrorKinds.
// Validate never fails: an unrecognized submission is a classification
// result, not an error.
func Validate(ctx ValidationContext) ValidationResult {
	return validate.Validate(ctx)
}

// Generate assembles one Exercise honoring opts, using a seeded PRNG for
// determinism: the same seed and Options always produce the same
// Exercise. It returns a *NoCandidateError if no verb satisfies the
// requested difficulty, category, tense, and forbid-list combination.
//
// Generate is stateless: it has no access to a learner's scheduling
// history, so at Expert difficulty verb selection is only biased toward
// low-mastery and error-prone verbs when the caller fills in
// opts.CardPriorities itself. [Engine.Generate] does this automatically
// from its own scheduler state.
func Generate(opts GenerateOptions) (Exercise, error) {
	ex, err := generate.Generate(opts)
	return ex, wrapErr("Generate", err)
}

// Verbs lists every declared infinitive. Read-only introspection over the
// immutable verb table, for callers that want to enumerate the declared
// set themselves rather than only filtering by difficulty.
func Verbs() []string {
	out := make([]string, 0, len(grammar.Verbs))
	for name := range grammar.Verbs {
		out = append(out, name)
	}
	return out
}

// VerbsForDifficulty returns the infinitives admissible at a difficulty
// level's gated verb pool.
func VerbsForDifficulty(level DifficultyLevel) []string {
	return grammar.VerbsForDifficulty(level)
}

// Triggers lists the full WEIRDO trigger catalog.
func Triggers() []grammar.Trigger {
	out := make([]grammar.Trigger, len(grammar.Triggers))
	copy(out, grammar.Triggers)
	return out
}

// TriggersByCategory returns the trigger catalog entries for a single
// WEIRDO category.
func TriggersByCategory(c TriggerCategory) []grammar.Trigger {
	return grammar.TriggersByCategory(c)
}
