// Bench is a benchmarking tool for measuring elastichash fill throughput,
// probe behavior near the fill ceiling, and concurrent lookup throughput.
//
// Usage:
//
//	go run ./cmd/bench -capacity 10000000 -delta 0.001 -readers 8
//
// Flags:
//
//	-capacity  Total slot count (default: 10,000,000)
//	-delta     Target free-slot ratio in (0,1) (default: 0.001)
//	-lookups   Lookups per reader goroutine (default: 1,000,000)
//	-readers   Concurrent reader goroutines (default: 4)
//	-seed      Probe-mixing seed, 0 for random (default: 0)
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/elastichash"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

func main() {
	capacityFlag := flag.Int("capacity", 10_000_000, "total slot count")
	deltaFlag := flag.Float64("delta", 0.001, "target free-slot ratio in (0,1)")
	lookupsFlag := flag.Int("lookups", 1_000_000, "lookups per reader goroutine")
	readersFlag := flag.Int("readers", 4, "concurrent reader goroutines")
	seedFlag := flag.Uint64("seed", 0, "probe-mixing seed (0 = random)")
	flag.Parse()

	capacity := *capacityFlag
	delta := *deltaFlag
	lookups := *lookupsFlag
	readers := *readersFlag

	var opts []elastichash.Option[uint64]
	if *seedFlag != 0 {
		opts = append(opts, elastichash.WithSeed[uint64](*seedFlag))
	}
	table, err := elastichash.New[uint64, uint64](capacity, delta, opts...)
	if err != nil {
		fmt.Printf("Failed to construct table: %v\n", err)
		os.Exit(1)
	}
	numKeys := uint64(table.MaxInserts())

	// murmur3 scrambles the sequential index stream so the table is
	// exercised with realistic 64-bit keys rather than a dense integer
	// range.
	fmt.Println("Generating keys...")
	keygenStart := time.Now()
	keys := make([]uint64, numKeys)
	var buf [8]byte
	for i := range keys {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		keys[i], _ = murmur3.Sum128WithSeed(buf[:], 0x1234)
	}
	keygenDuration := time.Since(keygenStart)

	fmt.Printf("Filling %d keys into %d slots (%.4f%% final occupancy)...\n",
		numKeys, capacity, 100*float64(numKeys)/float64(capacity))
	fillStart := time.Now()
	for i, k := range keys {
		if _, err := table.Insert(k, uint64(i)); err != nil {
			fmt.Printf("Insert failed at key %d: %v\n", i, err)
			os.Exit(1)
		}
	}
	fillDuration := time.Since(fillStart)

	st := table.Status()
	fmt.Printf("Fill:    %v (%.0f inserts/sec)\n",
		fillDuration, float64(numKeys)/fillDuration.Seconds())
	fmt.Printf("Probes:  %d total, %.2f avg per insert\n",
		st.Probes, float64(st.Probes)/float64(numKeys))
	fmt.Print(st)

	// The table takes no internal locks; concurrent lookups are safe only
	// because no inserter runs during this phase.
	fmt.Printf("Running %d readers x %d lookups...\n", readers, lookups)
	lookupStart := time.Now()
	g, _ := errgroup.WithContext(context.Background())
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			rng := mrand.New(mrand.NewPCG(uint64(r), 0x9E3779B97F4A7C15))
			// Checksum retrieved values so the lookup loop cannot be
			// optimized away.
			sum := xxhash.New()
			var valBuf [8]byte
			for i := 0; i < lookups; i++ {
				idx := rng.Uint64N(numKeys)
				v, ok := table.Search(keys[idx])
				if !ok {
					return fmt.Errorf("reader %d: key %#x not found", r, keys[idx])
				}
				binary.LittleEndian.PutUint64(valBuf[:], v)
				sum.Write(valBuf[:])
			}
			_ = sum.Sum64()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("Lookup phase failed: %v\n", err)
		os.Exit(1)
	}
	lookupDuration := time.Since(lookupStart)

	totalLookups := readers * lookups
	fmt.Printf("Lookups: %v (%.0f lookups/sec across %d readers)\n",
		lookupDuration, float64(totalLookups)/lookupDuration.Seconds(), readers)
	fmt.Printf("Keygen:  %v\n", keygenDuration)
	fmt.Printf("Peak RSS: %.1f MB\n", float64(getMaxRSS())/(1024*1024))
}
