// Package elastichash implements a fixed-capacity, in-memory hash table
// with bounded worst-case probe length under high load factors (elastic
// hashing). The table never relocates or deletes entries; instead the
// backing storage is partitioned into roughly-halving levels, each probed
// with its own quadratic sequence, and insertion rations its probe budget
// per level based on how full that level and the next one are. Lookup cost
// stays low-variance even as the table approaches its configured fill
// ceiling, which makes the structure suitable for embedding in storage
// engines that care more about predictable reads than about resize or
// delete support.
//
// # Basic Usage
//
//	table, err := elastichash.New[string, int](1_000_000, 0.01,
//	    elastichash.WithHasher(elastichash.HashString))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, err := table.Insert("alpha", 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pos // level and slot the entry landed in
//
//	if v, ok := table.Search("alpha"); ok {
//	    fmt.Println(v)
//	}
//
// A table built with capacity n and free-slot ratio delta accepts exactly
// n - floor(delta*n) insertions; the reserved free slots are what keep probe
// sequences short. Once the ceiling is reached Insert returns
// errors.ErrTableFull (from github.com/tamirms/elastichash/errors) and the
// table must be replaced, not resized.
//
// # Package Structure
//
//   - Public API: table.go (New, accessors), insert.go (Insert),
//     search.go (Search), status.go (Status snapshot)
//   - Configuration: options.go (Option, WithHasher, WithSeed)
//   - Algorithm: layout.go (level sizing), probe.go (probe sequence and
//     probe limits)
//   - Hash helpers: hash.go (HashString, HashBytes)
//   - Errors: errors/ (all exported sentinels)
//   - Primitives: internal/mix/ (64-bit mixing)
package elastichash
