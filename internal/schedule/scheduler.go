// Package schedule owns the mutable spaced-repetition state for a single
// learner: card creation, SM-2 interval updates with an adaptive overlay,
// due-card ordering, rolling-window difficulty recommendation, and
// snapshot export/import.
//
// A Scheduler is not safe for concurrent mutation: one struct owns all
// mutable state, with a method for every operation, but no internal
// locking. The caller owns serialization of RecordResult/EnsureCard per
// learner, since each learner has their own Scheduler and nothing shares
// it across goroutines.
package schedule

import (
	"sort"
	"time"

	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
)

const defaultTargetResponseMs = 4000

// defaultRollingWindowSize is the width of the rolling window the
// adaptive-difficulty recommendation is computed over, absent an
// Option overriding it.
const defaultRollingWindowSize = 20

type reviewOutcome struct {
	correct    bool
	responseMs int64
}

// Scheduler holds every card for one learner.
type Scheduler struct {
	cards   map[CardID]*Card
	rolling []reviewOutcome

	targetResponseMs  int64
	rollingWindowSize int
	clock             func() time.Time
}

// Option configures a Scheduler at construction. The zero value of every
// knob (unset) falls back to the package default.
type Option func(*Scheduler)

// WithTargetResponseMs overrides the response time (in milliseconds) the
// adaptive overlay treats as "on pace"; see applyAdaptiveOverlay.
func WithTargetResponseMs(ms int64) Option {
	return func(s *Scheduler) { s.targetResponseMs = ms }
}

// WithRollingWindowSize overrides the number of recent results the
// adaptive-difficulty recommendation and Stats are computed over.
func WithRollingWindowSize(n int) Option {
	return func(s *Scheduler) { s.rollingWindowSize = n }
}

// WithClock overrides the time source used by the *Now convenience
// methods (EnsureCardNow, RecordResultNow, DueNow). Tests inject a fixed
// clock to keep those methods deterministic; New defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.clock = now }
}

// New returns an empty Scheduler, applying opts over the package
// defaults (target response time 4000ms, rolling window 20, clock
// time.Now).
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		cards:             make(map[CardID]*Card),
		targetResponseMs:  defaultTargetResponseMs,
		rollingWindowSize: defaultRollingWindowSize,
		clock:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureCardNow is EnsureCard using the Scheduler's configured clock
// instead of an explicit now.
func (s *Scheduler) EnsureCardNow(verb string, tense grammar.Tense, person grammar.Person) (Card, error) {
	return s.EnsureCard(verb, tense, person, s.clock())
}

// RecordResultNow is RecordResult using the Scheduler's configured clock
// instead of an explicit now.
func (s *Scheduler) RecordResultNow(id CardID, quality int, responseMs int64) (Card, error) {
	return s.RecordResult(id, quality, responseMs, s.clock())
}

// DueNow is Due using the Scheduler's configured clock instead of an
// explicit now.
func (s *Scheduler) DueNow(limit int) []CardID {
	return s.Due(s.clock(), limit)
}

// EnsureCard idempotently creates card state at SM-2 defaults for
// (verb, tense, person), or returns the existing card unchanged.
func (s *Scheduler) EnsureCard(verb string, tense grammar.Tense, person grammar.Person, now time.Time) (Card, error) {
	if _, ok := grammar.Lookup(verb); !ok {
		return Card{}, &conjugate.UnknownVerbError{Verb: verb}
	}
	id := cardID(verb, tense, person)
	if existing, ok := s.cards[id]; ok {
		return *existing, nil
	}
	card := newCard(verb, tense, person, now)
	s.cards[id] = &card
	return card, nil
}

// RecordResult applies one review to a card, running the SM-2 update,
// the adaptive overlay, the mastery/phase transition, and the
// rolling-window bookkeeping used by RecommendedAdjustment and Stats.
// No state is mutated if validation fails.
func (s *Scheduler) RecordResult(id CardID, quality int, responseMs int64, now time.Time) (Card, error) {
	if quality < 0 || quality > 5 {
		return Card{}, &InvalidQualityError{Quality: quality}
	}
	card, ok := s.cards[id]
	if !ok {
		return Card{}, &UnknownCardError{CardID: id}
	}

	wasFirstReview := card.TotalReviews == 0

	// interval_days uses the ease_factor as it stood before this
	// review's own delta is applied.
	repetitions, intervalDays := sm2Core(card.Repetitions, card.IntervalDays, card.EaseFactor, quality)
	ease := clamp(card.EaseFactor+easeDelta(quality), 1.3, 4.0)
	intervalDays = applyAdaptiveOverlay(intervalDays, responseMs, card.Tense, s.targetResponseMs)

	card.Repetitions = repetitions
	card.EaseFactor = ease
	card.IntervalDays = intervalDays
	card.DueAt = now.AddDate(0, 0, intervalDays)
	card.LastReviewed = now

	card.Mastery = clamp(card.Mastery+masteryDelta(quality), 0, 1)
	card.CurrentPhase = nextPhase(card.CurrentPhase, quality, repetitions, card.Mastery, intervalDays, wasFirstReview)

	correct := quality >= 3
	card.TotalReviews++
	if correct {
		card.CorrectReviews++
	}
	card.AverageResponseMs = runningAverage(card.AverageResponseMs, card.TotalReviews-1, responseMs)

	s.pushRolling(reviewOutcome{correct: correct, responseMs: responseMs})

	return *card, nil
}

// sm2Core runs the base SM-2 repetition/interval update, before the
// adaptive overlay and before the ease-factor update (which depends only
// on quality, not on the prior interval). ease is the card's ease_factor
// as of before this review.
func sm2Core(repetitions, intervalDays int, ease float64, quality int) (newRepetitions, newIntervalDays int) {
	if quality < 3 {
		return 0, 1
	}
	switch repetitions {
	case 0:
		intervalDays = 1
	case 1:
		intervalDays = 6
	default:
		intervalDays = roundToInt(float64(intervalDays) * ease)
	}
	return repetitions + 1, intervalDays
}

func easeDelta(quality int) float64 {
	q := float64(5 - quality)
	return 0.1 - q*(0.08+q*0.02)
}

func masteryDelta(quality int) float64 {
	switch {
	case quality >= 4:
		return 0.1
	case quality < 3:
		return -0.15
	default:
		return 0
	}
}

func nextPhase(current Phase, quality, repetitions int, mastery float64, intervalDays int, wasFirstReview bool) Phase {
	phase := current
	if wasFirstReview {
		phase = Learning
	}
	if phase == Learning && repetitions >= 2 {
		phase = Review
	}
	if phase == Review && mastery >= 0.9 && intervalDays >= 21 {
		phase = Mastered
	}
	if phase == Mastered && quality < 3 {
		phase = Review
	}
	return phase
}

// applyAdaptiveOverlay folds response-time and tense-difficulty
// multipliers into the SM-2 interval. targetMs is the Scheduler's
// configured "on pace" response time.
func applyAdaptiveOverlay(intervalDays int, responseMs int64, tense grammar.Tense, targetMs int64) int {
	responseMultiplier := 1.0
	switch {
	case responseMs > 2*targetMs:
		responseMultiplier = 0.8
	case responseMs < targetMs/2:
		responseMultiplier = 1.2
	}

	// The category multiplier keys on trigger category (DOUBT_DENIAL) and
	// on tense (IMPERFECT); a card's identity is only (verb, tense,
	// person), so the category axis isn't available at record-result
	// time. Only the tense axis is applied here.
	categoryMultiplier := 1.0
	if tense.IsImperfect() {
		categoryMultiplier = 0.9
	}

	scaled := roundToInt(float64(intervalDays) * responseMultiplier * categoryMultiplier)
	if scaled < 1 {
		scaled = 1
	}
	if scaled > 365 {
		scaled = 365
	}
	return scaled
}

func runningAverage(currentAvg int64, priorCount int, newSample int64) int64 {
	if priorCount <= 0 {
		return newSample
	}
	total := currentAvg*int64(priorCount) + newSample
	return roundToInt64(float64(total) / float64(priorCount+1))
}

func (s *Scheduler) pushRolling(o reviewOutcome) {
	s.rolling = append(s.rolling, o)
	if len(s.rolling) > s.rollingWindowSize {
		s.rolling = s.rolling[len(s.rolling)-s.rollingWindowSize:]
	}
}

// Snapshot is the derived, read-only session view: running accuracy and
// mean response time over the rolling window, plus the advisory
// difficulty recommendation they feed. It holds no state of its own;
// every field is recomputed from the rolling window on each call to
// Stats.
type Snapshot struct {
	SampleSize        int
	RunningAccuracy   float64
	RunningMeanMs     float64
	RecommendedChange DifficultyAdjustment
}

// Stats returns the current session snapshot. With no reviews recorded
// yet, it reports a zero-sample snapshot holding Hold.
func (s *Scheduler) Stats() Snapshot {
	if len(s.rolling) == 0 {
		return Snapshot{RecommendedChange: Hold}
	}
	var correct int
	var totalMs int64
	for _, o := range s.rolling {
		if o.correct {
			correct++
		}
		totalMs += o.responseMs
	}
	n := len(s.rolling)
	return Snapshot{
		SampleSize:        n,
		RunningAccuracy:   float64(correct) / float64(n),
		RunningMeanMs:     float64(totalMs) / float64(n),
		RecommendedChange: s.RecommendedAdjustment(),
	}
}

// DifficultyAdjustment is the scheduler's advisory recommendation for
// whether the caller's next exercise should target a higher, lower, or
// unchanged difficulty.
type DifficultyAdjustment int

const (
	Hold DifficultyAdjustment = iota
	Raise
	Lower
)

// RecommendedAdjustment reports the rolling-window-based difficulty
// recommendation. It is advisory: the generator may read it, but the
// caller decides whether to apply it.
func (s *Scheduler) RecommendedAdjustment() DifficultyAdjustment {
	if len(s.rolling) == 0 {
		return Hold
	}
	var correct int
	var totalMs int64
	for _, o := range s.rolling {
		if o.correct {
			correct++
		}
		totalMs += o.responseMs
	}
	accuracy := float64(correct) / float64(len(s.rolling))
	meanMs := float64(totalMs) / float64(len(s.rolling))

	if accuracy >= 0.85 && meanMs < float64(s.targetResponseMs) {
		return Raise
	}
	if accuracy < 0.60 {
		return Lower
	}
	return Hold
}

// Due returns up to limit card IDs whose due_at ≤ now, most overdue
// first with the tiebreak cascade (mastery, then ease_factor, then
// lexical card_id), followed by never-reviewed cards in lexical order.
// limit ≤ 0 means unlimited.
func (s *Scheduler) Due(now time.Time, limit int) []CardID {
	var due, fresh []*Card
	for _, c := range s.cards {
		if c.TotalReviews == 0 {
			fresh = append(fresh, c)
		} else if !c.DueAt.After(now) {
			due = append(due, c)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		overdueA := now.Sub(a.DueAt)
		overdueB := now.Sub(b.DueAt)
		if overdueA != overdueB {
			return overdueA > overdueB
		}
		if a.Mastery != b.Mastery {
			return a.Mastery < b.Mastery
		}
		if a.EaseFactor != b.EaseFactor {
			return a.EaseFactor < b.EaseFactor
		}
		return a.ID < b.ID
	})
	sort.Slice(fresh, func(i, j int) bool { return fresh[i].ID < fresh[j].ID })

	out := make([]CardID, 0, len(due)+len(fresh))
	for _, c := range due {
		out = append(out, c.ID)
	}
	for _, c := range fresh {
		out = append(out, c.ID)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CardPriorities scores every verb with at least one card by how much it
// needs practice: low mastery and a high observed error rate both raise
// the score. The result is meant to bias exercise-generation toward
// weak spots at the highest difficulty tier, not to rank cards for
// review order (Due already does that per-card).
//
// A verb's score is the worst of its cards: the one with lowest mastery
// and highest error rate drives selection, since a single weak
// (tense, person) combination is reason enough to keep drilling the
// verb. Never-reviewed cards contribute a neutral error rate (no
// evidence of mistakes yet), so a brand-new card's score comes from
// mastery alone.
func (s *Scheduler) CardPriorities() map[string]float64 {
	if len(s.cards) == 0 {
		return nil
	}
	out := make(map[string]float64)
	for _, c := range s.cards {
		errorRate := 0.0
		if c.TotalReviews > 0 {
			errorRate = 1 - float64(c.CorrectReviews)/float64(c.TotalReviews)
		}
		score := clamp(0.6*(1-c.Mastery)+0.4*errorRate, 0, 1)
		if score > out[c.Verb] {
			out[c.Verb] = score
		}
	}
	return out
}

// Card returns a copy of the card for id, if it exists.
func (s *Scheduler) Card(id CardID) (Card, bool) {
	c, ok := s.cards[id]
	if !ok {
		return Card{}, false
	}
	return *c, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
