package hash

// DefaultMultiplier - Prime multiplier used by the polynomial hash unless another one is configured
const DefaultMultiplier int64 = 37

// PolynomialHashAlgorithm - The internally used slot selection algorithm. It computes a polynomial over the
// runes of the key using Horner's rule, reduced modulo the table size, and resolves collisions by linear probing.
// There is no secondary hash, so keys hashing close to each other will cluster.
type PolynomialHashAlgorithm struct {
	tableSize  int64
	multiplier int64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
//   - tableSize is the initial number of slots to distribute over
//   - multiplier is the polynomial multiplier, DefaultMultiplier is used if zero is given
func NewPolynomialHashAlgorithm(tableSize, multiplier int64) *PolynomialHashAlgorithm {
	if multiplier == 0 {
		multiplier = DefaultMultiplier
	}
	ha := &PolynomialHashAlgorithm{multiplier: multiplier}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, no rounding to powers of two or primes takes place.
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
// Reducing in every step gives the same result as reducing the full polynomial once, without overflowing.
func (P *PolynomialHashAlgorithm) HashFunc1(key string) int64 {
	var h int64
	for _, r := range key {
		h = (P.multiplier*h + int64(r)) % P.tableSize
	}

	return h
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}

// GetMultiplier - Returns the polynomial multiplier in use
func (P *PolynomialHashAlgorithm) GetMultiplier() int64 {
	return P.multiplier
}

// ProbeIteration - Implements Linear Probing
func (P *PolynomialHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= P.tableSize {
		probe %= P.tableSize
	}

	return probe
}
