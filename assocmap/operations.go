package assocmap

import (
	"errors"
	"fmt"

	"github.com/gostonefire/speakerid/internal/model"
)

// Get - Gets the value bound to key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the configured default value.
func (M *Map[V]) Get(key string) (value V) {
	value, _ = M.Lookup(key)

	return
}

// Lookup - Gets the value bound to key and reports whether it was present.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the configured default value.
//   - ok is true if key has a live binding
func (M *Map[V]) Lookup(key string) (value V, ok bool) {
	index, err := M.probingForGet(key)
	if err != nil {
		value = M.defaultValue
		return
	}

	value = M.slots[index].Value
	ok = true

	return
}

// Contains - Returns true if key has a live binding
func (M *Map[V]) Contains(key string) bool {
	_, ok := M.Lookup(key)
	return ok
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same key.
// If the number of entries reaches the load factor the map grows before returning.
// If growing fails the map is left as it was before the call.
//   - key is the identifier of an entry
//   - value is the value to bind to key
//
// It returns:
//   - err is of type ProbingExhausted if no slot could be found, which can not happen as long as the load factor holds
//   - err wraps ConfigurationError if the hash algorithm refused to grow the table
func (M *Map[V]) Set(key string, value V) (err error) {
	index, err := M.probingForSet(key)
	if err != nil {
		return
	}

	previous := M.slots[index]
	M.setSlot(index, key, value)

	if M.overLoadFactor() {
		err = M.rehash()
		if err != nil {
			M.slots[index] = previous
			M.updateUtilizationInfo(model.SlotOccupied, previous.State)
			err = fmt.Errorf("error while growing map: %w", err)
			return
		}
	}

	return
}

// Delete - Deletes the entry bound to key by turning its slot into a tombstone
//   - key is the identifier of an entry
//
// It returns:
//   - err is of type KeyNotFound if key was never set or has already been deleted
func (M *Map[V]) Delete(key string) (err error) {
	index, err := M.probingForGet(key)
	if err != nil {
		if errors.Is(err, KeyNotFound{}) {
			err = KeyNotFound{msg: fmt.Sprintf("key not found: %q", key)}
		}
		return
	}

	fromState := M.slots[index].State
	M.slots[index].State = model.SlotTombstone
	M.updateUtilizationInfo(fromState, model.SlotTombstone)

	return
}
