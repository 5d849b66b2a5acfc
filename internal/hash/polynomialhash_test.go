//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPolynomialHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size as given", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(57, 0)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(57), tableSize, "correct tableSize value")
		assert.Equal(t, DefaultMultiplier, h.GetMultiplier(), "default multiplier used")
	})
}

func TestPolynomialHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("computes Horner's rule polynomial modulo table size", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(57, 0)

		// Execute
		a := h.HashFunc1("a")
		ab := h.HashFunc1("ab")
		empty := h.HashFunc1("")

		// Check
		assert.Equal(t, int64(97%57), a, "single rune hash")
		assert.Equal(t, int64((37*97+98)%57), ab, "two rune hash")
		assert.Equal(t, int64(0), empty, "empty key hashes to zero")
	})

	t.Run("matches the unreduced polynomial", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(10, 0)

		// Execute
		slot := h.HashFunc1("abc")

		// Check
		assert.Equal(t, int64(((97*37+98)*37+99)%10), slot, "reduced per step equals reduced once")
	})

	t.Run("uses configured multiplier", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(1000, 31)

		// Execute
		slot := h.HashFunc1("ab")

		// Check
		assert.Equal(t, int64((31*97+98)%1000), slot, "custom multiplier")
	})

	t.Run("stays within table for long and non ascii keys", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(7, 0)

		// Execute and Check
		for _, key := range []string{"é", "日本語のテキスト", "a very long key that would overflow without reduction in every step"} {
			slot := h.HashFunc1(key)
			assert.GreaterOrEqualf(t, slot, int64(0), "slot not negative for %q", key)
			assert.Lessf(t, slot, int64(7), "slot less than table size for %q", key)
		}
	})
}

func TestPolynomialHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(4, 0)
		assert.Equal(t, int64(4), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(8)

		// Check
		assert.Equal(t, int64(8), h.GetTableSize(), "correct tableSize value")
		assert.Less(t, h.HashFunc1("abcdef"), int64(8), "hash follows new table size")
	})
}

func TestPolynomialHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(57, 0)
		tableSize := h.GetTableSize()

		slot := h.HashFunc1("abc")

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(slot, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("steps by one and wraps", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(4, 0)

		// Execute and Check
		assert.Equal(t, int64(2), h.ProbeIteration(2, 0))
		assert.Equal(t, int64(3), h.ProbeIteration(2, 1))
		assert.Equal(t, int64(0), h.ProbeIteration(2, 2))
		assert.Equal(t, int64(1), h.ProbeIteration(2, 3))
	})
}
