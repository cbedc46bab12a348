package elastichash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// HashString is a canonical hasher for string keys, suitable for passing to
// WithHasher:
//
//	table, err := elastichash.New[string, int](capacity, delta,
//	    elastichash.WithHasher(elastichash.HashString))
//
// It applies xxHash64, so keys with skewed structure (URLs, file paths,
// sequential identifiers) still produce well-distributed probe sequences.
// Unlike the default maphash-based hasher it is stable across tables and
// runs.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes is the []byte counterpart of HashString, using xxHash3.
//
// Note that []byte is not comparable and cannot itself be a table key; use
// HashBytes inside a WithHasher closure that extracts the byte view of a
// comparable key type, e.g. a fixed-size array:
//
//	hash := func(k [16]byte) uint64 { return elastichash.HashBytes(k[:]) }
func HashBytes(b []byte) uint64 {
	return xxh3.Hash(b)
}
