package generate

import "github.com/subjunctivo/learning-engine/internal/grammar"

// Options narrows exercise selection. Difficulty must be one of the four
// levels (zero admits no verb, so Generate returns a *NoCandidateError);
// for the other fields the zero value means "no constraint". Category
// and Tense are pointers so "unset" is distinguishable from the
// zero-valued WISHES category or PRESENT_SUBJ tense.
type Options struct {
	Difficulty  grammar.DifficultyLevel
	Category    *grammar.TriggerCategory
	Tense       *grammar.Tense
	ForbidVerbs []string

	// Seed makes selection reproducible: the same seed and Options always
	// produce the same Exercise. Zero means "pick unpredictably".
	Seed int64

	// HintsOverride, when non-nil, replaces the difficulty's default hint
	// policy: true forces the full hint list, false suppresses all hints.
	HintsOverride *bool

	// CardPriorities optionally scores candidate verbs by how much they
	// need practice (see schedule.Scheduler.CardPriorities), in [0, 1].
	// At Expert difficulty, Generate biases verb selection toward higher
	// scores; a verb absent from the map is treated as baseline priority.
	// Nil means no bias data is available, so selection stays uniform
	// regardless of difficulty.
	CardPriorities map[string]float64
}

func forbidSet(verbs []string) map[string]bool {
	out := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		out[v] = true
	}
	return out
}
