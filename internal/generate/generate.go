// Package generate assembles exercises from the grammar package's verb,
// trigger, and difficulty data by picking a trigger, verb, person, and
// tense, conjugating the answer, and rendering a prompt and hint set
// around it.
package generate

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// Generate assembles one Exercise honoring opts. It returns a
// *NoCandidateError if the verb pool is empty after applying difficulty
// and ForbidVerbs.
func Generate(opts Options) (Exercise, error) {
	rng := rngFor(opts.Seed)

	verbs := candidateVerbs(opts)
	if len(verbs) == 0 {
		return Exercise{}, &NoCandidateError{Difficulty: fmt.Sprintf("%d", opts.Difficulty)}
	}

	trigger, template := pickTrigger(rng, opts.Category)
	verb := pickVerb(rng, verbs, opts)
	persons := grammar.PersonsForDifficulty(opts.Difficulty)
	person := persons[rng.IntN(len(persons))]
	tense := pickTense(rng, opts, trigger)

	v, ok := grammar.Lookup(verb)
	if !ok {
		return Exercise{}, &NoCandidateError{Difficulty: fmt.Sprintf("%d", opts.Difficulty)}
	}

	expected, err := conjugate.Conjugate(verb, tense, person)
	if err != nil {
		return Exercise{}, err
	}

	var alternatives []string
	if tense.IsImperfect() {
		alt, err := conjugate.Conjugate(verb, tense.Variant(), person)
		if err == nil {
			alternatives = []string{alt}
		}
	}

	prompt := renderPrompt(template, verb, person)
	hints := assembleHints(v, trigger, tense, opts)
	explanation := explain(v, trigger, tense)

	return Exercise{
		Prompt:        prompt,
		Verb:          verb,
		Tense:         tense,
		Person:        person,
		Category:      trigger.Category,
		TriggerPhrase: trigger.Phrase,
		Expected:      expected,
		Alternatives:  alternatives,
		Hints:         hints,
		Explanation:   explanation,
	}, nil
}

func rngFor(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// pickVerb chooses a candidate verb, uniformly unless this is an Expert
// exercise with CardPriorities data available, in which case selection
// is weighted toward low-mastery and error-prone verbs: "selection
// biased toward low-mastery and error-prone cards."
func pickVerb(rng *rand.Rand, verbs []string, opts Options) string {
	if opts.Difficulty != grammar.Expert || len(opts.CardPriorities) == 0 {
		return verbs[rng.IntN(len(verbs))]
	}

	const baseWeight = 1.0
	weights := make([]float64, len(verbs))
	var total float64
	for i, v := range verbs {
		weights[i] = baseWeight + opts.CardPriorities[v]
		total += weights[i]
	}

	roll := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return verbs[i]
		}
	}
	return verbs[len(verbs)-1]
}

func candidateVerbs(opts Options) []string {
	forbidden := forbidSet(opts.ForbidVerbs)
	var out []string
	for _, v := range grammar.VerbsForDifficulty(opts.Difficulty) {
		if !forbidden[v] {
			out = append(out, v)
		}
	}
	// The verb table is a map; sort so a fixed seed picks the same verb.
	sort.Strings(out)
	return out
}

// pickTrigger chooses a category (uniformly within a requested category,
// else weighted across CategoryWeights) and then a trigger uniformly
// within that category, returning one of its templates.
func pickTrigger(rng *rand.Rand, requested *grammar.TriggerCategory) (grammar.Trigger, string) {
	var category grammar.TriggerCategory
	if requested != nil {
		category = *requested
	} else {
		category = weightedCategory(rng)
	}

	candidates := grammar.TriggersByCategory(category)
	if len(candidates) == 0 {
		candidates = grammar.Triggers
	}
	trigger := candidates[rng.IntN(len(candidates))]
	template := trigger.Templates[rng.IntN(len(trigger.Templates))]
	return trigger, template
}

func weightedCategory(rng *rand.Rand) grammar.TriggerCategory {
	roll := rng.Float64()
	var cumulative float64
	for _, c := range grammar.AllCategories {
		w := grammar.CategoryWeights[c]
		if w == 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return c
		}
	}
	return grammar.Wishes
}

func pickTense(rng *rand.Rand, opts Options, trigger grammar.Trigger) grammar.Tense {
	if trigger.HasForceTense {
		return trigger.ForceTense
	}
	if opts.Tense != nil {
		return *opts.Tense
	}
	allowed := grammar.TensesForDifficulty(opts.Difficulty)
	return allowed[rng.IntN(len(allowed))]
}

func renderPrompt(template, verb string, person grammar.Person) string {
	s := strings.ReplaceAll(template, "{V}", "["+verb+"]")
	s = strings.ReplaceAll(s, "{P}", person.Pronoun())
	return s
}

func assembleHints(v grammar.Verb, trigger grammar.Trigger, tense grammar.Tense, opts Options) []string {
	max := maxHints(opts.Difficulty)
	if opts.HintsOverride != nil {
		if *opts.HintsOverride {
			max = 3
		} else {
			max = 0
		}
	}
	if max == 0 {
		return nil
	}

	all := []string{
		"category: " + trigger.Category.String(),
		ruleSummary(v, tense),
		"class: " + v.Class.String(),
	}
	if max > len(all) {
		max = len(all)
	}
	return all[:max]
}

func maxHints(level grammar.DifficultyLevel) int {
	switch level {
	case grammar.Beginner, grammar.Intermediate:
		return 3
	case grammar.Expert:
		return 1
	default: // Advanced
		return 0
	}
}

func ruleSummary(v grammar.Verb, tense grammar.Tense) string {
	var parts []string
	if v.Irregular {
		parts = append(parts, "irregular")
	}
	if v.StemChange != grammar.NoStemChange {
		parts = append(parts, "stem-change "+v.StemChange.String())
	}
	if v.Spelling != grammar.NoSpellingChange && tense == grammar.PresentSubj {
		parts = append(parts, "spelling-change "+v.Spelling.String())
	}
	if len(parts) == 0 {
		return "rule: regular"
	}
	return "rule: " + strings.Join(parts, ", ")
}

func explain(v grammar.Verb, trigger grammar.Trigger, tense grammar.Tense) string {
	return fmt.Sprintf("%q requires the subjunctive (%s). %s, %s tense.",
		trigger.Phrase, trigger.Category.String(), ruleSummary(v, tense), tense.String())
}
