package model

// SlotState - State of a slot in an open addressing table
type SlotState uint8

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that holds an active binding
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted.
// Key and Value are kept so the slot can be reactivated by a later set of the same key.
const SlotTombstone SlotState = 2

// Slot - Represents one slot in the table
type Slot[V any] struct {
	State SlotState
	Key   string
	Value V
}

// StorageParameters - Represents parameters and utilization of a map
type StorageParameters struct {
	Capacity          int64
	LoadFactor        float64
	GrowthFactor      int64
	Occupied          int64
	Tombstones        int64
	InternalAlgorithm bool
}
