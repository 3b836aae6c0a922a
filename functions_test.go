package subjunctive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjunctive "github.com/subjunctivo/learning-engine"
)

func TestConjugateUnknownVerbWrapped(t *testing.T) {
	_, err := subjunctive.Conjugate("glerb", subjunctive.PresentSubj, subjunctive.FirstSg)
	require.Error(t, err)
	assert.ErrorIs(t, err, subjunctive.ErrUnknownVerb)
	var unknown *subjunctive.UnknownVerbError
	assert.ErrorAs(t, err, &unknown)
}

func TestFullTableUnknownVerbWrapped(t *testing.T) {
	_, err := subjunctive.FullTable("glerb", subjunctive.PresentSubj)
	require.Error(t, err)
	assert.ErrorIs(t, err, subjunctive.ErrUnknownVerb)
}

func TestGenerateNoCandidateWrapped(t *testing.T) {
	all := subjunctive.VerbsForDifficulty(subjunctive.Expert)
	require.NotEmpty(t, all)
	_, err := subjunctive.Generate(subjunctive.GenerateOptions{
		Difficulty:  subjunctive.Expert,
		Seed:        1,
		ForbidVerbs: all,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, subjunctive.ErrNoCandidate)
	var noCandidate *subjunctive.NoCandidateError
	assert.ErrorAs(t, err, &noCandidate)
}
