package assocmap

import (
	"fmt"
	"math"

	"github.com/gostonefire/speakerid/hashfunc"
	"github.com/gostonefire/speakerid/internal/hash"
	"github.com/gostonefire/speakerid/internal/model"
)

// DefaultCapacity - Initial number of slots used by DefaultConf
const DefaultCapacity int64 = 57

// DefaultLoadFactor - Occupancy ratio at which a map configured by DefaultConf grows
const DefaultLoadFactor float64 = 0.5

// DefaultGrowthFactor - Factor by which a map configured by DefaultConf multiplies its capacity when growing
const DefaultGrowthFactor int64 = 2

// DefaultMultiplier - Polynomial multiplier of the internal hash algorithm
const DefaultMultiplier = hash.DefaultMultiplier

// Conf - Is the configuration given to NewMap.
//   - Capacity is the initial number of slots, must be higher than 0 (zero)
//   - DefaultValue is returned by Get for keys that are not present
//   - LoadFactor is the occupancy ratio (0 < LoadFactor <= 1) at which the map grows
//   - GrowthFactor is the factor (at least 2) by which capacity is multiplied when growing
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Multiplier is the polynomial multiplier for the internal hash algorithm, DefaultMultiplier if zero. Ignored for custom algorithms.
type Conf[V any] struct {
	Capacity      int64
	DefaultValue  V
	LoadFactor    float64
	GrowthFactor  int64
	HashAlgorithm hashfunc.HashAlgorithm
	Multiplier    int64
}

// DefaultConf - Returns a Conf with the documented defaults and the given default value
func DefaultConf[V any](defaultValue V) Conf[V] {
	return Conf[V]{
		Capacity:     DefaultCapacity,
		DefaultValue: defaultValue,
		LoadFactor:   DefaultLoadFactor,
		GrowthFactor: DefaultGrowthFactor,
		Multiplier:   DefaultMultiplier,
	}
}

// Map - An open addressing map with string keys. Deleted entries are left as tombstones to keep probe
// chains intact, and the table grows by GrowthFactor whenever the number of live entries reaches the load factor.
// Iteration over the contents is not supported.
type Map[V any] struct {
	slots             []model.Slot[V]
	capacity          int64
	defaultValue      V
	loadFactor        float64
	growthFactor      int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nTombstones       int64
}

// NewMap - Returns a new, empty map given the configuration.
//   - conf is a Conf struct, see DefaultConf for a sensible starting point
//
// It returns:
//   - m is a pointer to the created map
//   - err is of type ConfigurationError if any of the configuration values are invalid
func NewMap[V any](conf Conf[V]) (m *Map[V], err error) {
	// Check if capacity is valid
	if conf.Capacity <= 0 {
		err = ConfigurationError{msg: fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", conf.Capacity)}
		return
	}

	// Check if load factor is valid
	if math.IsNaN(conf.LoadFactor) || conf.LoadFactor <= 0 || conf.LoadFactor > 1 {
		err = ConfigurationError{msg: fmt.Sprintf("load factor must be in the range (0, 1], got %v", conf.LoadFactor)}
		return
	}

	// Check if growth factor is valid, a factor of 1 never frees any slots
	if conf.GrowthFactor < 2 {
		err = ConfigurationError{msg: fmt.Sprintf("growth factor must be at least 2, got %d", conf.GrowthFactor)}
		return
	}

	// Check if multiplier is valid
	if conf.Multiplier < 0 {
		err = ConfigurationError{msg: fmt.Sprintf("multiplier can not be negative, got %d", conf.Multiplier)}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hash.NewPolynomialHashAlgorithm(conf.Capacity, conf.Multiplier)
		internalAlg = true
	} else {
		conf.HashAlgorithm.SetTableSize(conf.Capacity)
	}

	capacity := conf.HashAlgorithm.GetTableSize()
	if capacity <= 0 {
		err = ConfigurationError{msg: fmt.Sprintf("hash algorithm reports invalid table size %d", capacity)}
		return
	}

	m = &Map[V]{
		slots:             make([]model.Slot[V], capacity),
		capacity:          capacity,
		defaultValue:      conf.DefaultValue,
		loadFactor:        conf.LoadFactor,
		growthFactor:      conf.GrowthFactor,
		hashAlgorithm:     conf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Len - Returns the number of live (not deleted) entries
func (M *Map[V]) Len() int {
	return int(M.nOccupied)
}

// Capacity - Returns the current number of slots
func (M *Map[V]) Capacity() int64 {
	return M.capacity
}

// DefaultValue - Returns the value Get returns for absent keys
func (M *Map[V]) DefaultValue() V {
	return M.defaultValue
}

// GetStorageParameters - Returns a struct with the map parameters and current utilization
func (M *Map[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Capacity:          M.capacity,
		LoadFactor:        M.loadFactor,
		GrowthFactor:      M.growthFactor,
		Occupied:          M.nOccupied,
		Tombstones:        M.nTombstones,
		InternalAlgorithm: M.internalAlgorithm,
	}

	return
}
