package generate

import "github.com/subjunctivo/learning-engine/internal/grammar"

// Exercise is a single conjugation prompt assembled from a trigger
// template, a verb, a tense, and a person.
type Exercise struct {
	Prompt        string
	Verb          string
	Tense         grammar.Tense
	Person        grammar.Person
	Category      grammar.TriggerCategory
	TriggerPhrase string
	Expected      string
	Alternatives  []string
	Hints         []string
	Explanation   string
}
