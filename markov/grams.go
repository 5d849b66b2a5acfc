package markov

import "iter"

// GenerateGrams - Returns the sequence of (k-gram, k+1-gram) pairs of s, one pair per start offset.
// Indexes wrap around the end of s, so every offset yields full length grams and exactly as many pairs as
// s has runes are produced, regardless of k. The sequence is lazy and can be ranged over any number of times.
//   - s is the text to extract grams from
//   - k is the length of the shorter gram
func GenerateGrams(s string, k int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		symbols := []rune(s)
		n := len(symbols)
		if n == 0 || k < 0 {
			return
		}

		gram := make([]rune, k+1)
		for i := 0; i < n; i++ {
			for j := 0; j <= k; j++ {
				gram[j] = symbols[(i+j)%n]
			}
			if !yield(string(gram[:k]), string(gram)) {
				return
			}
		}
	}
}

// alphabetSize - Returns the number of distinct runes in s
func alphabetSize(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}

	return len(seen)
}
