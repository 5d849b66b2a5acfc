package markov

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Model - An order-k Markov model trained once from a text and immutable afterwards
type Model struct {
	order        int
	alphabetSize int
	counts       Counter
}

// New - Returns a Model of the given order trained on text.
//   - order is the number of preceding symbols the model conditions on, must be higher than 0 (zero)
//   - text is the training text
//   - useCustomMap selects the assocmap backed counter if true, a native Go map otherwise
//
// It returns:
//   - model is a pointer to the trained Model
//   - err is of type InvalidOrder, or a standard error if the counter failed
func New(order int, text string, useCustomMap bool) (model *Model, err error) {
	var counts Counter
	if useCustomMap {
		counts, err = NewHashCounter()
		if err != nil {
			err = fmt.Errorf("error while creating gram table: %w", err)
			return
		}
	} else {
		counts = NewNativeCounter()
	}

	return NewWithCounter(order, text, counts)
}

// NewWithCounter - Returns a Model of the given order trained on text, with counts kept in the given Counter.
// The counter must be empty and is owned by the model afterwards.
func NewWithCounter(order int, text string, counts Counter) (model *Model, err error) {
	// Check if order is valid
	if order < 1 {
		err = InvalidOrder{msg: fmt.Sprintf("order must be a positive value higher than 0 (zero), got %d", order)}
		return
	}

	for kGram, k1Gram := range GenerateGrams(text, order) {
		if err = counts.Increment(kGram); err != nil {
			err = fmt.Errorf("error while counting %q: %w", kGram, err)
			return
		}
		if err = counts.Increment(k1Gram); err != nil {
			err = fmt.Errorf("error while counting %q: %w", k1Gram, err)
			return
		}
	}

	model = &Model{
		order:        order,
		alphabetSize: alphabetSize(text),
		counts:       counts,
	}

	return
}

// Order - Returns the order of the model
func (M *Model) Order() int {
	return M.order
}

// AlphabetSize - Returns the number of distinct symbols in the training text
func (M *Model) AlphabetSize() int {
	return M.alphabetSize
}

// Entries - Returns the number of distinct grams counted during training
func (M *Model) Entries() int {
	return M.counts.Len()
}

// Count - Returns how many times gram was seen during training, 0 if never
func (M *Model) Count(gram string) int {
	n, _ := M.counts.Count(gram)
	return n
}

// LogProbability - Returns the natural log probability of s under the model, not normalized by the length of s.
// An empty s has log probability 0 (zero).
//
// It returns:
//   - probability is the sum of the smoothed log probabilities over every circular position of s
//   - err is of type DomainError if the model was trained on an empty text
func (M *Model) LogProbability(s string) (probability float64, err error) {
	for kGram, k1Gram := range GenerateGrams(s, M.order) {
		n := M.Count(kGram)
		m := M.Count(k1Gram)

		denominator := n + M.alphabetSize
		if denominator == 0 {
			err = DomainError{msg: fmt.Sprintf("zero smoothing denominator for %q, model has an empty alphabet", kGram)}
			return 0, err
		}

		probability += math.Log(float64(m+1) / float64(denominator))
	}

	return
}

// NormalizedLogProbability - Returns LogProbability of s divided by the number of runes in s.
//
// It returns:
//   - probability is the per symbol log probability
//   - err is of type DomainError if s is empty or the model was trained on an empty text
func (M *Model) NormalizedLogProbability(s string) (probability float64, err error) {
	length := utf8.RuneCountInString(s)
	if length == 0 {
		err = DomainError{msg: "can not normalize by an empty text"}
		return
	}

	probability, err = M.LogProbability(s)
	if err != nil {
		return
	}

	probability /= float64(length)

	return
}
