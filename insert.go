package elastichash

import (
	elasticerrors "github.com/tamirms/elastichash/errors"
)

// Insert places (key, value) into the first free slot reachable under the
// elastic placement policy and returns where it landed.
//
// It returns elasticerrors.ErrTableFull once MaxInserts successful
// insertions have been made, and elasticerrors.ErrDuplicateKey if the key is
// already present. Neither error mutates the table. ErrNoSlot indicates an
// internal sizing/policy inconsistency and should be reported upward, not
// retried.
//
// The policy walks levels from largest to smallest:
//
//   - A level whose free ratio has dropped to delta/2 or below is skipped
//     outright; probing it would almost certainly be wasted work.
//   - While the next level still has headroom (free ratio above 0.25), the
//     current level is rationed to a load-dependent probe limit; if the
//     budget is spent without finding a free slot, a short fixed fallback
//     probes the next level, which the outer walk then skips.
//   - Once the next level is nearly full, the current level is scanned
//     exhaustively before moving on.
//   - The final level is always scanned exhaustively; there is nothing to
//     fall back to beyond it.
func (t *Table[K, V]) Insert(key K, value V) (Position, error) {
	if t.numInserts >= t.maxInserts {
		return Position{}, elasticerrors.ErrTableFull
	}
	if _, ok := t.lookup(key); ok {
		return Position{}, elasticerrors.ErrDuplicateKey
	}

	h := t.hash(key)
	last := len(t.levels) - 1
	for i := 0; i <= last; {
		if i == last {
			if pos, ok := t.place(i, h, key, value, len(t.levels[i].slots)); ok {
				return pos, nil
			}
			break
		}

		load := t.levels[i].load()
		if load <= t.delta/2 {
			i++
			continue
		}

		if nextLoad := t.levels[i+1].load(); nextLoad > nextLevelThreshold {
			if pos, ok := t.place(i, h, key, value, t.probeLimit(load)); ok {
				return pos, nil
			}
			if i+1 == last {
				// The last level is scanned exhaustively by the next
				// iteration; a limited fallback there would only repeat a
				// prefix of that scan.
				i++
				continue
			}
			if pos, ok := t.place(i+1, h, key, value, fallbackProbes); ok {
				return pos, nil
			}
			// The fallback already probed level i+1; resume past it rather
			// than probing the same level twice.
			i += 2
			continue
		}

		// Next level nearly full while this one still has room: scan this
		// whole level before giving up on it.
		if pos, ok := t.place(i, h, key, value, len(t.levels[i].slots)); ok {
			return pos, nil
		}
		i++
	}

	return Position{}, elasticerrors.ErrNoSlot
}

// place walks the probe sequence of level li for up to limit attempts and
// claims the first empty slot found. limit may exceed the level size; probe
// indices wrap modulo the size either way.
func (t *Table[K, V]) place(li int, h uint64, key K, value V, limit int) (Position, bool) {
	lvl := &t.levels[li]
	base := t.probeBase(h, li)
	size := len(lvl.slots)
	for j := 0; j < limit; j++ {
		t.probes++
		idx := probeIndex(base, j, size)
		s := &lvl.slots[idx]
		if !s.used {
			s.key = key
			s.value = value
			s.used = true
			lvl.occupied++
			t.numInserts++
			return Position{Level: li, Slot: idx}, true
		}
	}
	return Position{}, false
}
