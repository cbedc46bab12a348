// Package errors defines all exported error sentinels for the elastichash
// library.
//
// This is the single source of truth for error values. Both the top-level
// elastichash package and internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrZeroCapacity = errors.New("elastichash: capacity must be positive")
	ErrInvalidDelta = errors.New("elastichash: delta must be in (0, 1)")
)

// Insert errors
var (
	ErrTableFull    = errors.New("elastichash: maximum allowed insertions reached")
	ErrDuplicateKey = errors.New("elastichash: duplicate key detected")
)

// Internal errors
var (
	// ErrNoSlot is returned when no level yields a free slot even though the
	// insertion ceiling has not been reached. It signals an inconsistency
	// between level sizing and the placement policy and is not recoverable
	// for the failing call.
	ErrNoSlot = errors.New("elastichash: no free slot found in any level")
)
