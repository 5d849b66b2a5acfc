//go:build unit

package speaker

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/gostonefire/speakerid/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifySpeaker(t *testing.T) {
	t.Run("resolves a tie between single symbol speakers to A", func(t *testing.T) {
		// Execute
		result, err := IdentifySpeaker("aaaaaa", "bbbbbb", "aaaaaa", 1, false)

		// Check
		// Every term is ln(1) under both models: ln((6+1)/(6+1)) for A and ln((0+1)/(0+1)) for B
		require.NoError(t, err)
		assert.Equal(t, LabelA, result.Label)
		assert.Equal(t, 0.0, result.ScoreA)
		assert.Equal(t, 0.0, result.ScoreB)
	})

	for _, useCustomMap := range []bool{true, false} {
		t.Run(fmt.Sprintf("attributes text to the closer speaker with custom map %t", useCustomMap), func(t *testing.T) {
			// Execute
			resultA, errA := IdentifySpeaker("ababab", "aabbaabb", "abab", 1, useCustomMap)
			resultB, errB := IdentifySpeaker("aabbaabb", "ababab", "abab", 1, useCustomMap)

			// Check
			// ln((3+1)/(3+2)) per symbol under "ababab", ln((2+1)/(4+2)) under "aabbaabb"
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, LabelA, resultA.Label)
			assert.Greater(t, resultA.ScoreA, resultA.ScoreB)
			assert.InDelta(t, -0.22314355131420976, resultA.ScoreA, 1e-12)
			assert.InDelta(t, -0.6931471805599453, resultA.ScoreB, 1e-12)
			assert.Equal(t, LabelB, resultB.Label)
			assert.Equal(t, resultA.ScoreA, resultB.ScoreB, "scores follow the speakers")
		})
	}

	t.Run("scores are log probabilities normalized by text length", func(t *testing.T) {
		// Prepare
		textA := "it was the best of times, it was the worst of times"
		textB := "call me ishmael. some years ago, never mind how long precisely"
		textC := "it was the age of wisdom, it was the age of foolishness"
		modelA, err := markov.New(3, textA, true)
		require.NoError(t, err)
		modelB, err := markov.New(3, textB, true)
		require.NoError(t, err)
		rawA, err := modelA.LogProbability(textC)
		require.NoError(t, err)
		rawB, err := modelB.LogProbability(textC)
		require.NoError(t, err)

		// Execute
		result, err := IdentifySpeaker(textA, textB, textC, 3, true)

		// Check
		require.NoError(t, err)
		assert.Equal(t, rawA/float64(len(textC)), result.ScoreA)
		assert.Equal(t, rawB/float64(len(textC)), result.ScoreB)
	})

	t.Run("custom map and native map agree", func(t *testing.T) {
		// Prepare
		textA := "the rain in spain stays mainly in the plain"
		textB := "peter piper picked a peck of pickled peppers"
		textC := "in spain the rain"

		for k := 1; k <= 5; k++ {
			// Execute
			custom, err := IdentifySpeaker(textA, textB, textC, k, true)
			require.NoError(t, err)
			native, err := IdentifySpeaker(textA, textB, textC, k, false)
			require.NoError(t, err)

			// Check
			assert.Equalf(t, native, custom, "identical result for k=%d", k)
		}
	})
}

func TestIdentifier_Identify(t *testing.T) {
	t.Run("fails for an empty unattributed text", func(t *testing.T) {
		// Prepare
		identifier := NewIdentifier(nil)

		// Execute
		_, err := identifier.Identify("abc", "def", "", 2, true)

		// Check
		assert.ErrorIs(t, err, markov.DomainError{})
	})

	t.Run("rejects an empty unattributed text before training", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		identifier := NewIdentifier(logger)

		// Execute
		_, err := identifier.Identify("abc", "def", "", 0, true)

		// Check
		assert.ErrorIs(t, err, markov.DomainError{})
		assert.NotErrorIs(t, err, markov.InvalidOrder{}, "order never reaches a model")
		assert.NotContains(t, buf.String(), "Model trained")
	})

	t.Run("fails for an empty reference text", func(t *testing.T) {
		// Prepare
		identifier := NewIdentifier(nil)

		// Execute
		_, err := identifier.Identify("abc", "", "abc", 2, false)

		// Check
		assert.ErrorIs(t, err, markov.DomainError{})
		assert.Contains(t, err.Error(), "speaker B")
	})

	t.Run("fails for a non positive order", func(t *testing.T) {
		// Prepare
		identifier := NewIdentifier(nil)

		// Execute
		_, err := identifier.Identify("abc", "def", "abc", 0, true)

		// Check
		assert.ErrorIs(t, err, markov.InvalidOrder{})
	})

	t.Run("logs training and the conclusion at debug level", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		identifier := NewIdentifier(logger)

		// Execute
		_, err := identifier.Identify("abc", "cba", "abc", 1, true)

		// Check
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Model trained")
		assert.Contains(t, buf.String(), "speaker=A")
		assert.Contains(t, buf.String(), "speaker=B")
		assert.Contains(t, buf.String(), "Speaker identified")
	})
}
