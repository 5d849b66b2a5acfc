package hashfunc

// HashAlgorithm - Interface that permits a user of the assocmap.Map to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new map and every time the map grows. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the capacity of the map.
	//   - tableSize is the number of slots the map will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in the probe being skipped.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// The map uses this value as its capacity, so it must be the actual table size and not just
	// the table size given in the last call to SetTableSize.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in iteration given the value from HashFunc1.
	// Since this function will be called repeatedly in a collision resolution situation, and the hash value
	// from HashFunc1 is the same throughout iterations for one key, the function takes that value rather than
	// using the actual key as input.
	// The probe sequence for iterations 0 -> table size - 1 must visit every slot exactly once.
	ProbeIteration(hf1Value, iteration int64) int64
}
