package elastichash

import (
	"math"

	"github.com/tamirms/elastichash/internal/mix"
)

// probeBase derives the starting point of the probe sequence for a key hash
// in a given level. Each level gets an independent base by running the key
// hash, the table seed, and the level index through the SplitMix64
// finalizer. Insert and Search must agree on this exact derivation; an empty
// slot mid-sequence is only proof of absence because both sides walk the
// same sequence.
func (t *Table[K, V]) probeBase(h uint64, level int) uint64 {
	return mix.Mix64(h ^ t.seed ^ (uint64(level)+1)*mix.Phi)
}

// probeIndex returns the j-th candidate slot index for a probe base:
// (base + j*j) mod size, i.e. quadratic probing within the level.
func probeIndex(base uint64, j, size int) int {
	return int((base + uint64(j)*uint64(j)) % uint64(size))
}

// probeLimit computes the per-level probe budget
// max(1, ceil(c * min(log2(1/load), log2(1/delta)))) for a non-last level.
// A larger free ratio (or a looser delta) shortens the budget, pushing
// insertions toward emptier levels. Callers must guarantee load > 0, which
// the placement policy does: levels with load <= delta/2 are skipped before
// the limit is evaluated.
func (t *Table[K, V]) probeLimit(load float64) int {
	limit := int(math.Ceil(probeConstant * math.Min(math.Log2(1/load), math.Log2(1/t.delta))))
	return max(limit, 1)
}
