package schedule

import (
	"time"

	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// CardID deterministically identifies a card by the triple that defines
// it. Two EnsureCard calls for the same (verb, tense, person) always
// return the same ID; there is no random or sequential component.
type CardID string

func cardID(verb string, tense grammar.Tense, person grammar.Person) CardID {
	return CardID(verb + "|" + tense.String() + "|" + person.String())
}

// Phase is a card's position in the learning lifecycle.
type Phase int

const (
	PhaseNew Phase = iota
	Learning
	Review
	Mastered
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "NEW"
	case Learning:
		return "LEARNING"
	case Review:
		return "REVIEW"
	case Mastered:
		return "MASTERED"
	default:
		return "UNKNOWN_PHASE"
	}
}

// ParsePhase inverts Phase.String.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "NEW":
		return PhaseNew, true
	case "LEARNING":
		return Learning, true
	case "REVIEW":
		return Review, true
	case "MASTERED":
		return Mastered, true
	default:
		return 0, false
	}
}

// Card is one learner's SM-2 state for a single (verb, tense, person).
type Card struct {
	ID     CardID
	Verb   string
	Tense  grammar.Tense
	Person grammar.Person

	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	DueAt        time.Time
	LastReviewed time.Time // zero value means never reviewed

	TotalReviews      int
	CorrectReviews    int
	AverageResponseMs int64

	Mastery      float64
	CurrentPhase Phase
}

const defaultEaseFactor = 2.5

func newCard(verb string, tense grammar.Tense, person grammar.Person, now time.Time) Card {
	return Card{
		ID:           cardID(verb, tense, person),
		Verb:         verb,
		Tense:        tense,
		Person:       person,
		EaseFactor:   defaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		DueAt:        now,
		CurrentPhase: PhaseNew,
	}
}
