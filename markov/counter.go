package markov

import (
	"github.com/gostonefire/speakerid/assocmap"
)

// Unset - Default value of the assocmap backed counter
const Unset = -1

// HashCells - Initial capacity of the assocmap backed counter
const HashCells int64 = 57

// Counter - Interface for the gram frequency table of a Model
type Counter interface {
	// Count - Returns the number of times gram was counted and whether it was counted at all
	Count(gram string) (n int, ok bool)
	// Increment - Adds one to the count of gram
	Increment(gram string) error
	// Len - Returns the number of distinct grams counted
	Len() int
}

// DefaultTableConf - Returns the assocmap configuration used by NewHashCounter
func DefaultTableConf() assocmap.Conf[int] {
	conf := assocmap.DefaultConf(Unset)
	conf.Capacity = HashCells
	return conf
}

// HashCounter - Counter backed by an assocmap.Map
type HashCounter struct {
	table *assocmap.Map[int]
}

// NewHashCounter - Returns a Counter backed by an assocmap.Map configured by DefaultTableConf
func NewHashCounter() (counter *HashCounter, err error) {
	return NewHashCounterWithConf(DefaultTableConf())
}

// NewHashCounterWithConf - Returns a Counter backed by an assocmap.Map with the given configuration
func NewHashCounterWithConf(conf assocmap.Conf[int]) (counter *HashCounter, err error) {
	table, err := assocmap.NewMap(conf)
	if err != nil {
		return
	}

	counter = &HashCounter{table: table}

	return
}

// Count - Returns the number of times gram was counted and whether it was counted at all
func (H *HashCounter) Count(gram string) (n int, ok bool) {
	n, ok = H.table.Lookup(gram)
	if !ok {
		n = 0
	}

	return
}

// Increment - Adds one to the count of gram
func (H *HashCounter) Increment(gram string) error {
	n, _ := H.Count(gram)
	return H.table.Set(gram, n+1)
}

// Len - Returns the number of distinct grams counted
func (H *HashCounter) Len() int {
	return H.table.Len()
}

// Capacity - Returns the current capacity of the underlying table
func (H *HashCounter) Capacity() int64 {
	return H.table.Capacity()
}

// NativeCounter - Counter backed by a native Go map
type NativeCounter map[string]int

// NewNativeCounter - Returns an empty NativeCounter
func NewNativeCounter() NativeCounter {
	return make(NativeCounter)
}

// Count - Returns the number of times gram was counted and whether it was counted at all
func (N NativeCounter) Count(gram string) (n int, ok bool) {
	n, ok = N[gram]
	return
}

// Increment - Adds one to the count of gram
func (N NativeCounter) Increment(gram string) error {
	N[gram]++
	return nil
}

// Len - Returns the number of distinct grams counted
func (N NativeCounter) Len() int {
	return len(N)
}
