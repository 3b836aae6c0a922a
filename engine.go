package subjunctive

import (
	"time"

	"github.com/subjunctivo/learning-engine/internal/generate"
	"github.com/subjunctivo/learning-engine/internal/schedule"
)

// Engine owns one learner's scheduler state. Grammar Tables are immutable
// and shared package-wide, so Engine carries no reference to them; only
// the mutable per-learner scheduling state needs an instance at all.
//
// Engine is not safe for concurrent mutation: callers must serialize
// EnsureCard and RecordResult calls for a given learner. Conjugate,
// FullTable, Validate, and Generate need no Engine and may be called
// concurrently from any number of goroutines.
type Engine struct {
	scheduler *schedule.Scheduler
}

// Option configures an Engine at construction. There are no config
// files; an Engine is always built in code, with New's zero-argument
// form giving usable defaults.
type Option func(*engineConfig)

type engineConfig struct {
	schedulerOpts []schedule.Option
}

// WithTargetResponseMs overrides the response time (milliseconds) the
// scheduler's adaptive overlay treats as "on pace". Default 4000.
func WithTargetResponseMs(ms int64) Option {
	return func(c *engineConfig) {
		c.schedulerOpts = append(c.schedulerOpts, schedule.WithTargetResponseMs(ms))
	}
}

// WithWindowSize overrides the number of recent results the adaptive
// difficulty recommendation and Stats are computed over. Default 20.
func WithWindowSize(n int) Option {
	return func(c *engineConfig) {
		c.schedulerOpts = append(c.schedulerOpts, schedule.WithRollingWindowSize(n))
	}
}

// WithClock overrides the time source used by the *Now convenience
// methods (EnsureCardNow, RecordResultNow, DueNow), so callers can keep
// the scheduler deterministic and testable without threading an
// explicit time.Time through every call. Default time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) {
		c.schedulerOpts = append(c.schedulerOpts, schedule.WithClock(now))
	}
}

// New returns an Engine with no cards, applying opts over usable
// defaults; no options are required.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{scheduler: schedule.New(cfg.schedulerOpts...)}
}

// EnsureCard idempotently creates scheduling state at SM-2 defaults for
// (verb, tense, person), or returns the existing card unchanged.
func (e *Engine) EnsureCard(verb string, tense Tense, person Person, now time.Time) (Card, error) {
	c, err := e.scheduler.EnsureCard(verb, tense, person, now)
	return c, wrapErr("EnsureCard", err)
}

// EnsureCardNow is EnsureCard using the Engine's configured clock
// (time.Now by default, or whatever WithClock supplied) instead of an
// explicit now.
func (e *Engine) EnsureCardNow(verb string, tense Tense, person Person) (Card, error) {
	c, err := e.scheduler.EnsureCardNow(verb, tense, person)
	return c, wrapErr("EnsureCard", err)
}

// RecordResult applies one review to a card, running the SM-2 update, the
// adaptive overlay, and the mastery/phase transition. No state is
// mutated if validation of quality or cardID fails.
func (e *Engine) RecordResult(cardID CardID, quality Quality, responseMs int64, now time.Time) (Card, error) {
	c, err := e.scheduler.RecordResult(cardID, int(quality), responseMs, now)
	return c, wrapErr("RecordResult", err)
}

// RecordResultNow is RecordResult using the Engine's configured clock
// instead of an explicit now.
func (e *Engine) RecordResultNow(cardID CardID, quality Quality, responseMs int64) (Card, error) {
	c, err := e.scheduler.RecordResultNow(cardID, int(quality), responseMs)
	return c, wrapErr("RecordResult", err)
}

// Due returns up to limit card IDs due for review at now, most overdue
// first, new cards last. limit ≤ 0 means unlimited.
func (e *Engine) Due(now time.Time, limit int) []CardID {
	return e.scheduler.Due(now, limit)
}

// DueNow is Due using the Engine's configured clock instead of an
// explicit now.
func (e *Engine) DueNow(limit int) []CardID {
	return e.scheduler.DueNow(limit)
}

// Card returns a copy of the card for id, if it has been created.
func (e *Engine) Card(id CardID) (Card, bool) {
	return e.scheduler.Card(id)
}

// RecommendedDifficulty reports the scheduler's advisory session-level
// difficulty recommendation, based on the rolling window of recent
// results (the last 20 unless WithWindowSize set another size). It is advisory only: [Generate] does not consult it
// automatically, and callers may ignore it entirely.
func (e *Engine) RecommendedDifficulty() DifficultyAdjustment {
	return e.scheduler.RecommendedAdjustment()
}

// Stats returns the learner's current session snapshot: running accuracy
// and mean response time over the rolling window of recent results, plus
// the advisory difficulty recommendation they feed. Recent error
// categories are not tracked here: the Scheduler only observes
// quality/correctness per review, never the Validator's ErrorKind, so a
// caller that wants error histograms must aggregate Validate results
// itself.
func (e *Engine) Stats() SessionSnapshot {
	return e.scheduler.Stats()
}

// Generate assembles one Exercise honoring opts, same as the
// package-level Generate, except opts.CardPriorities is filled in from
// this Engine's own scheduling state when the caller left it nil: at
// Expert difficulty this biases verb selection toward the learner's
// low-mastery and error-prone cards. A caller that already set
// CardPriorities explicitly is left untouched.
func (e *Engine) Generate(opts GenerateOptions) (Exercise, error) {
	if opts.CardPriorities == nil {
		opts.CardPriorities = e.scheduler.CardPriorities()
	}
	ex, err := generate.Generate(opts)
	return ex, wrapErr("Generate", err)
}

// ExportState serializes every card into the tab-separated snapshot
// format.
func (e *Engine) ExportState() (string, error) {
	snapshot, err := e.scheduler.ExportState()
	return snapshot, wrapErr("ExportState", err)
}

// ImportState replaces the Engine's scheduler state with the snapshot's
// contents. The replacement is all-or-nothing: on any parse error or
// header mismatch, a *CorruptSnapshotError is returned and no state is
// mutated.
func (e *Engine) ImportState(snapshot string) error {
	return wrapErr("ImportState", e.scheduler.ImportState(snapshot))
}
