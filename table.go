package elastichash

import (
	"hash/maphash"
	"math"
	"math/rand/v2"

	elasticerrors "github.com/tamirms/elastichash/errors"
)

const (
	// probeConstant is the tuning constant c in the probe limit
	// f(load) = c * min(log2(1/load), log2(1/delta)). Larger values probe
	// fuller levels harder before falling back to the next level.
	probeConstant = 4.0

	// fallbackProbes is the fixed number of probes attempted in the next
	// level after a limited probe pass fails (ceil of probeConstant).
	fallbackProbes = 4

	// nextLevelThreshold is the free-slot ratio below which the next level
	// counts as nearly full. When the next level drops under it, the current
	// level is scanned exhaustively instead of being rationed by the probe
	// limit.
	nextLevelThreshold = 0.25
)

// slot is a single optional key/value cell. used distinguishes empty from
// occupied; a slot transitions empty to occupied exactly once and is never
// cleared, which is the structural guarantee search termination relies on.
type slot[K comparable, V any] struct {
	key   K
	value V
	used  bool
}

// level is one fixed-size partition of the table's slot array.
type level[K comparable, V any] struct {
	slots    []slot[K, V]
	occupied int
}

func (l *level[K, V]) free() int {
	return len(l.slots) - l.occupied
}

// load returns the free-slot ratio of the level (free/size, not occupancy).
func (l *level[K, V]) load() float64 {
	return float64(l.free()) / float64(len(l.slots))
}

// Position identifies the slot an insertion landed in.
type Position struct {
	Level int
	Slot  int
}

// Table is a fixed-capacity open-addressing hash table with load-adaptive
// per-level probe limits (elastic hashing). Capacity is fixed at
// construction; entries are never relocated or deleted; at most
// capacity - floor(delta*capacity) insertions succeed.
//
// Thread Safety:
//   - Search and Status are safe for concurrent use with each other
//   - Insert is NOT safe to call concurrently with any other method
//   - Callers needing a mutating reader/writer mix must supply their own lock
type Table[K comparable, V any] struct {
	delta      float64
	maxInserts int
	numInserts int
	levels     []level[K, V]

	hash func(K) uint64
	seed uint64

	// probes counts slot inspections made while placing entries.
	// Diagnostics only; never consulted by the placement policy.
	probes uint64
}

// New constructs a table with the given total slot count and target
// free-slot ratio delta. It returns elasticerrors.ErrZeroCapacity when
// capacity is not positive and elasticerrors.ErrInvalidDelta when delta is
// outside (0, 1). No partial table is produced on error.
func New[K comparable, V any](capacity int, delta float64, opts ...Option[K]) (*Table[K, V], error) {
	if capacity <= 0 {
		return nil, elasticerrors.ErrZeroCapacity
	}
	if !(delta > 0 && delta < 1) { // also rejects NaN
		return nil, elasticerrors.ErrInvalidDelta
	}

	cfg := defaultConfig[K]()
	for _, opt := range opts {
		opt(cfg)
	}

	hash := cfg.hasher
	if hash == nil {
		mseed := maphash.MakeSeed()
		hash = func(k K) uint64 { return maphash.Comparable(mseed, k) }
	}
	seed := cfg.seed
	if !cfg.seedSet {
		seed = rand.Uint64()
	}

	sizes := levelSizes(capacity)
	levels := make([]level[K, V], len(sizes))
	for i, size := range sizes {
		levels[i].slots = make([]slot[K, V], size)
	}

	return &Table[K, V]{
		delta:      delta,
		maxInserts: capacity - int(math.Floor(delta*float64(capacity))),
		levels:     levels,
		hash:       hash,
		seed:       seed,
	}, nil
}

// Capacity returns the total slot count across all levels.
func (t *Table[K, V]) Capacity() int {
	total := 0
	for i := range t.levels {
		total += len(t.levels[i].slots)
	}
	return total
}

// Len returns the number of successful insertions so far.
func (t *Table[K, V]) Len() int {
	return t.numInserts
}

// MaxInserts returns the hard ceiling on successful insertions,
// capacity - floor(delta*capacity).
func (t *Table[K, V]) MaxInserts() int {
	return t.maxInserts
}

// NumLevels returns the number of levels.
func (t *Table[K, V]) NumLevels() int {
	return len(t.levels)
}

// LevelSizes returns the slot count of each level, largest (first-probed)
// first.
func (t *Table[K, V]) LevelSizes() []int {
	sizes := make([]int, len(t.levels))
	for i := range t.levels {
		sizes[i] = len(t.levels[i].slots)
	}
	return sizes
}
