package elastichash

// levelSizes computes the level-length sequence for a table of the given
// capacity: each level is min(remaining, ceil(previous/2)), starting from
// previous = capacity, until the remaining capacity is exhausted. The sizes
// are monotonically non-increasing, roughly halving, and sum exactly to
// capacity. capacity must be positive, which guarantees at least one level.
func levelSizes(capacity int) []int {
	var sizes []int
	remaining := capacity
	prev := capacity
	for remaining > 0 {
		prev = min(remaining, (prev+1)/2)
		sizes = append(sizes, prev)
		remaining -= prev
	}
	return sizes
}
