package elastichash

// Option is a functional option for configuring a table at construction.
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	hasher  func(K) uint64
	seed    uint64
	seedSet bool
}

func defaultConfig[K comparable]() *config[K] {
	return &config[K]{}
}

// WithHasher overrides the key hash function. The default hashes any
// comparable key through hash/maphash with a per-table seed; supply a custom
// hasher when keys have structure the caller can exploit, or when a
// reproducible placement sequence is needed (see HashString and HashBytes
// for canonical string/byte hashers). The hasher must be deterministic for
// the lifetime of the table.
func WithHasher[K comparable](hash func(K) uint64) Option[K] {
	return func(c *config[K]) {
		c.hasher = hash
	}
}

// WithSeed fixes the probe-mixing seed. The default is randomized per table,
// which is sufficient since probe sequences only need to be deterministic
// within one table instance. Fixing the seed (together with a deterministic
// hasher) makes the full placement sequence reproducible across runs.
func WithSeed[K comparable](seed uint64) Option[K] {
	return func(c *config[K]) {
		c.seed = seed
		c.seedSet = true
	}
}
