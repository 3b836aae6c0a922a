package subjunctive_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjunctive "github.com/subjunctivo/learning-engine"
)

func TestEngineEnsureCardIsIdempotent(t *testing.T) {
	e := subjunctive.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)
	b, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngineEnsureCardUnknownVerb(t *testing.T) {
	e := subjunctive.New()
	_, err := e.EnsureCard("glerb", subjunctive.PresentSubj, subjunctive.FirstSg, time.Now())
	require.Error(t, err)
	var unknown *subjunctive.UnknownVerbError
	assert.ErrorAs(t, err, &unknown)
	assert.ErrorIs(t, err, subjunctive.ErrUnknownVerb)
	assert.NotErrorIs(t, err, subjunctive.ErrInvalidQuality)

	var wrapped *subjunctive.Error
	require.ErrorAs(t, err, &wrapped)
	assert.Equal(t, "EnsureCard", wrapped.Op)
	assert.Equal(t, subjunctive.FailureUnknownVerb, wrapped.Kind)
}

func TestEngineRecordResultThenDue(t *testing.T) {
	e := subjunctive.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	card, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)

	updated, err := e.RecordResult(card.ID, subjunctive.Perfect, 3000, now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.IntervalDays)

	due := e.Due(now, 0)
	assert.Empty(t, due, "card just reviewed should not be due immediately")

	due = e.Due(now.AddDate(0, 0, 2), 0)
	assert.Contains(t, due, card.ID)
}

func TestEngineRecordResultInvalidQuality(t *testing.T) {
	e := subjunctive.New()
	now := time.Now()
	card, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)

	_, err = e.RecordResult(card.ID, subjunctive.Quality(9), 1000, now)
	require.Error(t, err)
	var invalid *subjunctive.InvalidQualityError
	assert.ErrorAs(t, err, &invalid)
	assert.ErrorIs(t, err, subjunctive.ErrInvalidQuality)
}

func TestEngineImportStateCorruptSnapshotWrapped(t *testing.T) {
	e := subjunctive.New()
	err := e.ImportState("not a valid snapshot")
	require.Error(t, err)
	assert.ErrorIs(t, err, subjunctive.ErrCorruptSnapshot)
	var corrupt *subjunctive.CorruptSnapshotError
	assert.ErrorAs(t, err, &corrupt)
}

func TestEngineWithClockDrivesNowMethods(t *testing.T) {
	fixed := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	e := subjunctive.New(subjunctive.WithClock(func() time.Time { return fixed }))

	card, err := e.EnsureCardNow("hablar", subjunctive.PresentSubj, subjunctive.FirstSg)
	require.NoError(t, err)

	updated, err := e.RecordResultNow(card.ID, subjunctive.Perfect, 1000)
	require.NoError(t, err)
	assert.Equal(t, fixed.AddDate(0, 0, updated.IntervalDays), updated.DueAt)

	assert.Empty(t, e.DueNow(0), "card just reviewed should not be due at the same instant")
}

func TestEngineWithTargetResponseMsAffectsAdaptiveOverlay(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	lenient := subjunctive.New(subjunctive.WithTargetResponseMs(60000))
	card, err := lenient.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)
	underLenientTarget, err := lenient.RecordResult(card.ID, subjunctive.Perfect, 5000, now)
	require.NoError(t, err)

	strict := subjunctive.New(subjunctive.WithTargetResponseMs(1000))
	card2, err := strict.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)
	underStrictTarget, err := strict.RecordResult(card2.ID, subjunctive.Perfect, 5000, now)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, underLenientTarget.IntervalDays, underStrictTarget.IntervalDays,
		"the same response time should not be penalized more against a longer target")
}

func TestEngineExportImportRoundTrip(t *testing.T) {
	e := subjunctive.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	card, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)
	_, err = e.RecordResult(card.ID, subjunctive.CorrectDifficult, 2000, now)
	require.NoError(t, err)

	snapshot, err := e.ExportState()
	require.NoError(t, err)

	restored := subjunctive.New()
	require.NoError(t, restored.ImportState(snapshot))

	again, err := restored.ExportState()
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
}

func TestEngineStatsAdvisoryDifficulty(t *testing.T) {
	e := subjunctive.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	card, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, now)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := e.RecordResult(card.ID, subjunctive.Perfect, 1000, now.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	stats := e.Stats()
	assert.Equal(t, 10, stats.SampleSize)
	assert.Equal(t, 1.0, stats.RunningAccuracy)
	assert.Equal(t, subjunctive.Raise, stats.RecommendedChange)
}

func TestGenerateViaFacade(t *testing.T) {
	ex, err := subjunctive.Generate(subjunctive.GenerateOptions{Difficulty: subjunctive.Beginner, Seed: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, ex.Expected)
}
