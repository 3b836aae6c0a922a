package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjunctivo/learning-engine/internal/grammar"
	"github.com/subjunctivo/learning-engine/internal/schedule"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newHablarCard(t *testing.T, s *schedule.Scheduler) schedule.Card {
	t.Helper()
	card, err := s.EnsureCard("hablar", grammar.PresentSubj, grammar.FirstSg, epoch)
	require.NoError(t, err)
	return card
}

func TestEnsureCardDefaults(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	assert.Equal(t, 2.5, card.EaseFactor)
	assert.Equal(t, 0, card.IntervalDays)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, schedule.PhaseNew, card.CurrentPhase)
}

func TestEnsureCardIsIdempotent(t *testing.T) {
	s := schedule.New()
	a := newHablarCard(t, s)
	b, err := s.EnsureCard("hablar", grammar.PresentSubj, grammar.FirstSg, epoch.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEnsureCardUnknownVerb(t *testing.T) {
	s := schedule.New()
	_, err := s.EnsureCard("glerb", grammar.PresentSubj, grammar.FirstSg, epoch)
	require.Error(t, err)
}

func TestRecordResultInvalidQuality(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	_, err := s.RecordResult(card.ID, 6, 1000, epoch)
	require.Error(t, err)
	var invalid *schedule.InvalidQualityError
	require.ErrorAs(t, err, &invalid)
}

func TestRecordResultUnknownCard(t *testing.T) {
	s := schedule.New()
	_, err := s.RecordResult("nope|PRESENT_SUBJ|1SG", 5, 1000, epoch)
	require.Error(t, err)
	var unknown *schedule.UnknownCardError
	require.ErrorAs(t, err, &unknown)
}

// TestTwoConsecutivePerfectAnswers checks the interval sequence 1, 6
// after two quality-5 reviews from a fresh card.
func TestTwoConsecutivePerfectAnswers(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)

	after1, err := s.RecordResult(card.ID, 5, 4000, epoch)
	require.NoError(t, err)
	assert.Equal(t, 1, after1.IntervalDays)
	assert.Equal(t, 1, after1.Repetitions)

	after2, err := s.RecordResult(card.ID, 5, 4000, epoch.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, after2.IntervalDays)
	assert.Equal(t, 2, after2.Repetitions)
}

// TestThreeConsecutivePerfectAnswers checks that three quality-5 reviews
// from a fresh card produce intervals 1, 6, 16 and a due date of t0+23d
// after the third.
func TestThreeConsecutivePerfectAnswers(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)

	r1, err := s.RecordResult(card.ID, 5, 4000, epoch)
	require.NoError(t, err)
	assert.Equal(t, 1, r1.IntervalDays)
	assert.True(t, r1.DueAt.Equal(epoch.AddDate(0, 0, 1)))

	t1 := epoch.AddDate(0, 0, 1)
	r2, err := s.RecordResult(card.ID, 5, 4000, t1)
	require.NoError(t, err)
	assert.Equal(t, 6, r2.IntervalDays)
	assert.True(t, r2.DueAt.Equal(epoch.AddDate(0, 0, 7)))

	t2 := epoch.AddDate(0, 0, 7)
	r3, err := s.RecordResult(card.ID, 5, 4000, t2)
	require.NoError(t, err)
	assert.InDelta(t, 2.8, r3.EaseFactor, 1e-9)
	assert.Equal(t, 16, r3.IntervalDays)
	assert.True(t, r3.DueAt.Equal(epoch.AddDate(0, 0, 23)))
}

// TestFailureAfterThreeSuccessesResetsRepetitions continues the prior
// three-success sequence with a quality-2 answer: repetitions and
// interval reset but ease factor only dips.
func TestFailureAfterThreeSuccessesResetsRepetitions(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)

	now := epoch
	for _, days := range []int{0, 1, 7} {
		_, err := s.RecordResult(card.ID, 5, 4000, epoch.AddDate(0, 0, days))
		require.NoError(t, err)
		now = epoch.AddDate(0, 0, days)
	}

	r, err := s.RecordResult(card.ID, 2, 4000, now.AddDate(0, 0, 16))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Repetitions)
	assert.Equal(t, 1, r.IntervalDays)
	assert.InDelta(t, 2.48, r.EaseFactor, 1e-9)
}

func TestEaseFactorNeverLeavesBounds(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	now := epoch
	for i := 0; i < 200; i++ {
		quality := 0
		if i%3 != 0 {
			quality = 5
		}
		r, err := s.RecordResult(card.ID, quality, 1000, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.EaseFactor, 1.3)
		assert.LessOrEqual(t, r.EaseFactor, 4.0)
		assert.LessOrEqual(t, r.IntervalDays, 365)
		assert.LessOrEqual(t, r.CorrectReviews, r.TotalReviews)
		now = now.AddDate(0, 0, 1)
	}
}

func TestIntervalCappedAt365(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	now := epoch
	var last schedule.Card
	var err error
	for i := 0; i < 40; i++ {
		last, err = s.RecordResult(card.ID, 5, 500, now)
		require.NoError(t, err)
		now = last.DueAt
	}
	assert.LessOrEqual(t, last.IntervalDays, 365)
}

func TestMasteredCardDropsBackToReviewOnFailure(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	now := epoch
	var last schedule.Card
	var err error
	for last.CurrentPhase != schedule.Mastered {
		last, err = s.RecordResult(card.ID, 5, 500, now)
		require.NoError(t, err)
		now = last.DueAt
		if now.Sub(epoch) > 50*365*24*time.Hour {
			t.Fatal("card never reached MASTERED")
		}
	}

	failed, err := s.RecordResult(card.ID, 1, 500, now)
	require.NoError(t, err)
	assert.Equal(t, schedule.Review, failed.CurrentPhase)
}

func TestDueEmptyForFreshScheduler(t *testing.T) {
	s := schedule.New()
	due := s.Due(epoch, 0)
	assert.Empty(t, due)
}

func TestDueOrdersMostOverdueFirstThenNewCards(t *testing.T) {
	s := schedule.New()

	a, err := s.EnsureCard("hablar", grammar.PresentSubj, grammar.FirstSg, epoch)
	require.NoError(t, err)
	b, err := s.EnsureCard("comer", grammar.PresentSubj, grammar.FirstSg, epoch)
	require.NoError(t, err)

	_, err = s.RecordResult(a.ID, 5, 1000, epoch)
	require.NoError(t, err)
	_, err = s.RecordResult(b.ID, 5, 1000, epoch)
	require.NoError(t, err)

	// A new, never-reviewed card, created after the two above.
	_, err = s.EnsureCard("vivir", grammar.PresentSubj, grammar.FirstSg, epoch)
	require.NoError(t, err)

	due := s.Due(epoch.AddDate(0, 0, 10), 0)
	require.Len(t, due, 3)
	// Both a and b are equally (10-1)=9 days overdue; b due before
	// the fresh "vivir" card, which sorts last as it was never reviewed.
	assert.Equal(t, schedule.CardID("vivir|PRESENT_SUBJ|1SG"), due[2])
}

func TestDueRespectsLimit(t *testing.T) {
	s := schedule.New()
	for _, v := range []string{"hablar", "comer", "vivir"} {
		_, err := s.EnsureCard(v, grammar.PresentSubj, grammar.FirstSg, epoch)
		require.NoError(t, err)
	}
	due := s.Due(epoch, 2)
	assert.Len(t, due, 2)
}

func TestRecommendedAdjustmentRaisesOnHighAccuracyAndFastResponses(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	now := epoch
	for i := 0; i < 20; i++ {
		_, err := s.RecordResult(card.ID, 5, 1000, now)
		require.NoError(t, err)
		now = now.AddDate(0, 0, 1)
	}
	assert.Equal(t, schedule.Raise, s.RecommendedAdjustment())
}

func TestRecommendedAdjustmentLowersOnPoorAccuracy(t *testing.T) {
	s := schedule.New()
	card := newHablarCard(t, s)
	now := epoch
	for i := 0; i < 20; i++ {
		quality := 1
		if i%4 == 0 {
			quality = 5
		}
		_, err := s.RecordResult(card.ID, quality, 4000, now)
		require.NoError(t, err)
		now = now.AddDate(0, 0, 1)
	}
	assert.Equal(t, schedule.Lower, s.RecommendedAdjustment())
}

func TestStatsZeroSampleHoldsByDefault(t *testing.T) {
	s := schedule.New()
	stats := s.Stats()
	assert.Equal(t, 0, stats.SampleSize)
	assert.Equal(t, schedule.Hold, stats.RecommendedChange)
}
