// Package speaker decides which of two authors most likely wrote an unattributed text by comparing the
// per symbol log probability of the text under a Markov model of each author.
package speaker

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/gostonefire/speakerid/markov"
)

// Label - Name of the speaker a text is attributed to
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
)

// Result - Normalized log probabilities of the unattributed text under each speaker's model
// and the speaker it is attributed to
type Result struct {
	ScoreA float64
	ScoreB float64
	Label  Label
}

// Identifier - Trains speaker models and compares their scores. It keeps no state between calls.
type Identifier struct {
	logger *slog.Logger
}

// NewIdentifier - Returns an Identifier
//   - logger receives debug output, nil discards it
func NewIdentifier(logger *slog.Logger) *Identifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Identifier{logger: logger}
}

// IdentifySpeaker - Runs Identify on an Identifier logging to slog.Default
func IdentifySpeaker(textA, textB, textC string, k int, useCustomMap bool) (Result, error) {
	return NewIdentifier(slog.Default()).Identify(textA, textB, textC, k, useCustomMap)
}

// Identify - Trains an order k model on textA and on textB, scores textC under both and attributes
// textC to the speaker with the higher score. Ties go to A.
//   - textA is the reference text of speaker A
//   - textB is the reference text of speaker B
//   - textC is the unattributed text
//   - k is the model order
//   - useCustomMap selects the assocmap backed counter instead of a native map
//
// It returns:
//   - result holds both scores and the label
//   - err is of type markov.DomainError if textC is empty or a reference text is empty,
//     or markov.InvalidOrder if k is not positive
func (I *Identifier) Identify(textA, textB, textC string, k int, useCustomMap bool) (Result, error) {
	var (
		wg             sync.WaitGroup
		scoreA, scoreB float64
		errA, errB     error
	)

	if utf8.RuneCountInString(textC) == 0 {
		return Result{}, fmt.Errorf("unattributed text is empty: %w", markov.DomainError{})
	}

	// Each model owns its own table, so both can be built and queried at once.
	wg.Add(2)
	go func() {
		defer wg.Done()
		scoreA, errA = I.score("A", textA, textC, k, useCustomMap)
	}()
	go func() {
		defer wg.Done()
		scoreB, errB = I.score("B", textB, textC, k, useCustomMap)
	}()
	wg.Wait()

	if errA != nil {
		return Result{}, fmt.Errorf("failed to score speaker A: %w", errA)
	}
	if errB != nil {
		return Result{}, fmt.Errorf("failed to score speaker B: %w", errB)
	}

	result := Result{ScoreA: scoreA, ScoreB: scoreB, Label: LabelB}
	if scoreA >= scoreB {
		result.Label = LabelA
	}

	I.logger.Debug("Speaker identified",
		slog.Float64("score_a", result.ScoreA),
		slog.Float64("score_b", result.ScoreB),
		slog.String("label", string(result.Label)),
	)

	return result, nil
}

// score - Trains a model on reference and returns the normalized log probability of unknown under it.
func (I *Identifier) score(speaker, reference, unknown string, k int, useCustomMap bool) (float64, error) {
	model, err := markov.New(k, reference, useCustomMap)
	if err != nil {
		return 0, err
	}

	I.logger.Debug("Model trained",
		slog.String("speaker", speaker),
		slog.Int("order", model.Order()),
		slog.Int("alphabet_size", model.AlphabetSize()),
		slog.Int("entries", model.Entries()),
		slog.Bool("custom_map", useCustomMap),
	)

	return model.NormalizedLogProbability(unknown)
}
