package elastichash

import (
	"fmt"
	"strings"
)

// Status is a read-only occupancy snapshot of a table. It is produced
// outside the insert/search hot path and holds copies, so it stays valid
// after further insertions (reflecting the state at snapshot time).
type Status struct {
	Capacity   int
	NumInserts int
	MaxInserts int
	// Probes is the cumulative number of slot inspections made while
	// placing entries.
	Probes uint64
	Levels []LevelStatus
}

// LevelStatus reports one level's occupancy.
type LevelStatus struct {
	Size     int
	Occupied int
	Free     int
	// Load is the free-slot ratio, Free/Size.
	Load float64
}

// Status returns an occupancy snapshot. Not safe to call concurrently with
// Insert.
func (t *Table[K, V]) Status() Status {
	st := Status{
		Capacity:   t.Capacity(),
		NumInserts: t.numInserts,
		MaxInserts: t.maxInserts,
		Probes:     t.probes,
		Levels:     make([]LevelStatus, len(t.levels)),
	}
	for i := range t.levels {
		lvl := &t.levels[i]
		st.Levels[i] = LevelStatus{
			Size:     len(lvl.slots),
			Occupied: lvl.occupied,
			Free:     lvl.free(),
			Load:     lvl.load(),
		}
	}
	return st
}

// String formats the snapshot as a multi-line occupancy report.
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "inserts: %d/%d (capacity %d, probes %d)\n",
		s.NumInserts, s.MaxInserts, s.Capacity, s.Probes)
	for i, lvl := range s.Levels {
		fmt.Fprintf(&b, "level %d: %d/%d free (load %.4f)\n",
			i, lvl.Free, lvl.Size, lvl.Load)
	}
	return b.String()
}
