package elastichash

// Search returns the value stored for key, or the zero value and false if
// the key is absent. Absence is a normal outcome, not an error. Search never
// mutates the table and is safe to run concurrently with other reads.
func (t *Table[K, V]) Search(key K) (V, bool) {
	return t.lookup(key)
}

// lookup walks every level's probe sequence for the key. Within a level an
// empty slot ends that level only: insertion claims the first empty slot
// along this exact sequence, so an empty slot mid-sequence proves the key
// was never placed at or beyond that position in this level. Occupied slots
// holding other keys are stepped over, bounded by the level size. All
// levels are visited, the last included; the search as a whole only ends
// when a match is found or every level is exhausted.
func (t *Table[K, V]) lookup(key K) (V, bool) {
	h := t.hash(key)
	for i := range t.levels {
		lvl := &t.levels[i]
		base := t.probeBase(h, i)
		size := len(lvl.slots)
		for j := 0; j < size; j++ {
			s := &lvl.slots[probeIndex(base, j, size)]
			if !s.used {
				break
			}
			if s.key == key {
				return s.value, true
			}
		}
	}
	var zero V
	return zero, false
}
