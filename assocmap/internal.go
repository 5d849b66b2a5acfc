package assocmap

import (
	"fmt"

	"github.com/gostonefire/speakerid/internal/model"
)

// probingForGet - Is the linear probing algorithm for getting an entry.
// Probing stops at the first empty slot or at the first slot holding key, whether live or deleted.
// It returns the index of the live slot holding key, or an error of type KeyNotFound.
func (M *Map[V]) probingForGet(key string) (index int64, err error) {
	var probe, n int64

	hf1Value := M.hashAlgorithm.HashFunc1(key)

	iMax := M.capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = M.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < M.capacity && probe >= 0 {
			slot := &M.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				err = KeyNotFound{}
				return

			case model.SlotOccupied:
				if slot.Key == key {
					index = probe
					return
				}

			case model.SlotTombstone:
				if slot.Key == key {
					err = KeyNotFound{}
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= M.capacity {
				err = KeyNotFound{}
				return
			}
		}
	}

	// This is just a failsafe, should never occur with a probe sequence that covers the table
	err = ProbingExhausted{}
	return
}

// probingForSet - Is the linear probing algorithm for finding the slot to write key into.
// It returns the slot holding key (live or deleted) if found before an empty slot, otherwise the first
// tombstone passed on the way, otherwise the empty slot that ended the probe.
func (M *Map[V]) probingForSet(key string) (index int64, err error) {
	var candidate, probe, n int64
	var hasCandidate bool

	hf1Value := M.hashAlgorithm.HashFunc1(key)

	iMax := M.capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = M.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < M.capacity && probe >= 0 {
			slot := &M.slots[probe]

			switch slot.State {
			case model.SlotEmpty:
				if hasCandidate {
					index = candidate
				} else {
					index = probe
				}
				return

			case model.SlotOccupied:
				if slot.Key == key {
					index = probe
					return
				}

			case model.SlotTombstone:
				if slot.Key == key {
					index = probe
					return
				}
				if !hasCandidate {
					candidate = probe
					hasCandidate = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= M.capacity {
				break
			}
		}
	}

	// No empty slot anywhere, a tombstone is still good enough
	if hasCandidate {
		index = candidate
		return
	}

	err = ProbingExhausted{msg: fmt.Sprintf("no free slot for key %q among %d slots", key, M.capacity)}
	return
}

// setSlot - Writes a live binding into the slot at index and updates utilization counters
func (M *Map[V]) setSlot(index int64, key string, value V) {
	fromState := M.slots[index].State
	M.slots[index] = model.Slot[V]{
		State: model.SlotOccupied,
		Key:   key,
		Value: value,
	}

	M.updateUtilizationInfo(fromState, model.SlotOccupied)
}

// updateUtilizationInfo - Updates the occupied and tombstone counters given a slot state transition
func (M *Map[V]) updateUtilizationInfo(fromState, toState model.SlotState) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotOccupied:
		M.nOccupied--
	case model.SlotTombstone:
		M.nTombstones--
	}

	switch toState {
	case model.SlotOccupied:
		M.nOccupied++
	case model.SlotTombstone:
		M.nTombstones++
	}
}

// overLoadFactor - Returns true if the live entries have reached the load factor
func (M *Map[V]) overLoadFactor() bool {
	return float64(M.nOccupied)/float64(M.capacity) >= M.loadFactor
}

// rehash - Grows the table by the growth factor, as many times as needed to get below the load factor,
// and reinserts every live entry. Tombstones are dropped. On error the table is restored.
func (M *Map[V]) rehash() (err error) {
	oldSlots := M.slots
	oldCapacity, oldOccupied, oldTombstones := M.capacity, M.nOccupied, M.nTombstones

	newCapacity := M.capacity * M.growthFactor
	for float64(M.nOccupied)/float64(newCapacity) >= M.loadFactor {
		newCapacity *= M.growthFactor
	}

	M.hashAlgorithm.SetTableSize(newCapacity)
	newCapacity = M.hashAlgorithm.GetTableSize()
	if newCapacity <= M.capacity {
		err = ConfigurationError{msg: fmt.Sprintf("hash algorithm refused to grow table from %d slots", M.capacity)}
		M.hashAlgorithm.SetTableSize(M.capacity)
		return
	}

	M.capacity = newCapacity
	M.slots = make([]model.Slot[V], newCapacity)
	M.nOccupied = 0
	M.nTombstones = 0

	var index int64
	for _, slot := range oldSlots {
		if slot.State != model.SlotOccupied {
			continue
		}
		index, err = M.probingForSet(slot.Key)
		if err != nil {
			M.hashAlgorithm.SetTableSize(oldCapacity)
			M.slots, M.capacity, M.nOccupied, M.nTombstones = oldSlots, oldCapacity, oldOccupied, oldTombstones
			return
		}
		M.setSlot(index, slot.Key, slot.Value)
	}

	return
}
