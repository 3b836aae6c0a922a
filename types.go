package subjunctive

import (
	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/generate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
	"github.com/subjunctivo/learning-engine/internal/schedule"
	"github.com/subjunctivo/learning-engine/internal/validate"
)

// Person is one of the six Spanish grammatical persons.
type Person = grammar.Person

// The six declared persons, re-exported for callers that don't want to
// import internal/grammar directly.
const (
	FirstSg  = grammar.FirstSg
	SecondSg = grammar.SecondSg
	ThirdSg  = grammar.ThirdSg
	FirstPl  = grammar.FirstPl
	SecondPl = grammar.SecondPl
	ThirdPl  = grammar.ThirdPl
)

// Tense is one of the three subjunctive tenses this engine conjugates.
type Tense = grammar.Tense

const (
	PresentSubj     = grammar.PresentSubj
	ImperfectSubjRA = grammar.ImperfectSubjRA
	ImperfectSubjSE = grammar.ImperfectSubjSE
)

// TriggerCategory is one of the six WEIRDO subjunctive-triggering
// categories.
type TriggerCategory = grammar.TriggerCategory

const (
	Wishes          = grammar.Wishes
	Emotions        = grammar.Emotions
	Impersonal      = grammar.Impersonal
	Recommendations = grammar.Recommendations
	DoubtDenial     = grammar.DoubtDenial
	Ojala           = grammar.Ojala
)

// DifficultyLevel is the four-tier exercise difficulty scale.
type DifficultyLevel = grammar.DifficultyLevel

const (
	Beginner     = grammar.Beginner
	Intermediate = grammar.Intermediate
	Advanced     = grammar.Advanced
	Expert       = grammar.Expert
)

// Quality is the SM-2 self-reported recall quality, 0 (total blackout) to
// 5 (perfect recall). Named so callers don't pass a bare int.
type Quality int

const (
	Blackout          Quality = 0
	IncorrectFamiliar Quality = 1
	IncorrectEasy     Quality = 2
	CorrectDifficult  Quality = 3
	CorrectHesitant   Quality = 4
	Perfect           Quality = 5
)

// Phase is a card's position in the learning lifecycle.
type Phase = schedule.Phase

const (
	PhaseNew      = schedule.PhaseNew
	PhaseLearning = schedule.Learning
	PhaseReview   = schedule.Review
	PhaseMastered = schedule.Mastered
)

// DifficultyAdjustment is the scheduler's advisory recommendation for the
// next exercise's difficulty.
type DifficultyAdjustment = schedule.DifficultyAdjustment

const (
	Hold  = schedule.Hold
	Raise = schedule.Raise
	Lower = schedule.Lower
)

// CardID deterministically identifies a card by (verb, tense, person).
type CardID = schedule.CardID

// SessionSnapshot is the derived, read-only session view of running
// accuracy and response time; see [Engine.Stats].
type SessionSnapshot = schedule.Snapshot

// Card is one learner's SM-2 state for a single (verb, tense, person).
type Card = schedule.Card

// Exercise is an immutable generated conjugation prompt.
type Exercise = generate.Exercise

// GenerateOptions narrows exercise selection; see [Generate].
type GenerateOptions = generate.Options

// ErrorKind classifies why a submitted answer did not match, in priority
// order. See [Validate].
type ErrorKind = validate.ErrorKind

const (
	NoError               = validate.None
	AccentOnly            = validate.AccentOnly
	MoodConfusion         = validate.MoodConfusion
	WrongPerson           = validate.WrongPerson
	WrongTense            = validate.WrongTense
	StemChangeMissing     = validate.StemChangeMissing
	SpellingChangeMissing = validate.SpellingChangeMissing
	EndingMismatch        = validate.EndingMismatch
	Unrecognized          = validate.Unrecognized
)

// ValidationContext carries everything Validate needs to classify a
// submission.
type ValidationContext = validate.Context

// ValidationResult is the outcome of grading one submission.
type ValidationResult = validate.Result

// Error taxonomy, re-exported so callers can use errors.As without
// reaching into internal packages.
type (
	UnknownVerbError     = conjugate.UnknownVerbError
	UnknownCardError     = schedule.UnknownCardError
	InvalidQualityError  = schedule.InvalidQualityError
	NoCandidateError     = generate.NoCandidateError
	CorruptSnapshotError = schedule.CorruptSnapshotError
)
