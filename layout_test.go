package elastichash

import (
	"testing"
)

func TestLevelSizesSumToCapacity(t *testing.T) {
	rng := newTestRNG(t)
	capacities := []int{1, 2, 3, 5, 10, 63, 64, 65, 1000, 99999, 1 << 20}
	for i := 0; i < 50; i++ {
		capacities = append(capacities, 1+int(rng.Uint64N(1_000_000)))
	}
	for _, capacity := range capacities {
		sizes := levelSizes(capacity)
		if len(sizes) == 0 {
			t.Fatalf("capacity %d: no levels", capacity)
		}
		total := 0
		for _, s := range sizes {
			if s <= 0 {
				t.Fatalf("capacity %d: non-positive level size %d in %v", capacity, s, sizes)
			}
			total += s
		}
		if total != capacity {
			t.Errorf("capacity %d: level sizes %v sum to %d", capacity, sizes, total)
		}
	}
}

func TestLevelSizesNonIncreasing(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 100; i++ {
		capacity := 1 + int(rng.Uint64N(100_000))
		sizes := levelSizes(capacity)
		for j := 1; j < len(sizes); j++ {
			if sizes[j] > sizes[j-1] {
				t.Fatalf("capacity %d: sizes %v increase at index %d", capacity, sizes, j)
			}
		}
	}
}

func TestLevelSizesHalving(t *testing.T) {
	// Each level is min(remaining, ceil(previous/2)); spot-check the shapes
	// this produces.
	cases := []struct {
		capacity int
		want     []int
	}{
		{1, []int{1}},
		{2, []int{1, 1}},
		{3, []int{2, 1}},
		{10, []int{5, 3, 2}},
		{100, []int{50, 25, 13, 7, 4, 1}},
	}
	for _, tc := range cases {
		got := levelSizes(tc.capacity)
		if len(got) != len(tc.want) {
			t.Errorf("capacity %d: got %v, want %v", tc.capacity, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("capacity %d: got %v, want %v", tc.capacity, got, tc.want)
				break
			}
		}
	}
}

func TestLevelSizesMatchTable(t *testing.T) {
	table, err := New[uint64, int](10, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 3, 2}
	got := table.LevelSizes()
	if len(got) != len(want) {
		t.Fatalf("LevelSizes() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("LevelSizes() = %v, want %v", got, want)
		}
	}
	if table.NumLevels() != 3 {
		t.Errorf("NumLevels() = %d, want 3", table.NumLevels())
	}
	if table.Capacity() != 10 {
		t.Errorf("Capacity() = %d, want 10", table.Capacity())
	}
}

func TestMaxInsertsArithmetic(t *testing.T) {
	cases := []struct {
		capacity int
		delta    float64
		want     int
	}{
		{10, 0.1, 9},
		{100000, 0.0001, 99990},
		{100, 0.25, 75},
		{1, 0.5, 1},
		{7, 0.3, 5},
	}
	for _, tc := range cases {
		table, err := New[uint64, int](tc.capacity, tc.delta)
		if err != nil {
			t.Fatalf("New(%d, %v): %v", tc.capacity, tc.delta, err)
		}
		if got := table.MaxInserts(); got != tc.want {
			t.Errorf("New(%d, %v).MaxInserts() = %d, want %d", tc.capacity, tc.delta, got, tc.want)
		}
	}
}
