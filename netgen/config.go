// Package netgen builds deterministic, structurally valid random learning
// nets for tests and fuzzing. It is not part of the core request pipeline;
// it exists because property tests over compress/reach/recommend/serial
// need a steady supply of nets that pass validate.Check without being
// hand-written fixtures every time.
//
// The generation shape (unit/split/condition/test/join probabilities,
// section/condition/test id assignment) follows the
// original implementation's own random-DAG test generator; the Go surface
// (a Config resolved from functional Options, validated eagerly, never
// panicking) follows the teacher's builder package idiom.
package netgen

import "math/rand"

// Option customizes a Generate call. As a rule, option constructors never
// panic and ignore nil inputs.
type Option func(cfg *Config)

// Config holds the resolved generation parameters. Config is not safe for
// concurrent mutation; each Generate call resolves its own.
type Config struct {
	seed        int64
	size        int
	branchiness float64
	maxBranches int
}

const (
	defaultSize        = 12
	defaultBranchiness = 0.35
	defaultMaxBranches = 3
)

// newConfig returns a Config initialized with defaults, then applies each
// option in order; later options override earlier ones.
func newConfig(opts ...Option) Config {
	cfg := Config{
		seed:        1,
		size:        defaultSize,
		branchiness: defaultBranchiness,
		maxBranches: defaultMaxBranches,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the RNG seed. Two Generate calls with identical options
// (seed included) produce bit-for-bit identical nets.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.seed = seed }
}

// WithSize sets the approximate number of unit nodes the generated net
// should contain. Values below 1 are rejected by Generate with
// ErrInvalidConfig, not silently clamped.
func WithSize(size int) Option {
	return func(cfg *Config) { cfg.size = size }
}

// WithBranchiness sets the probability, at each generation step, of
// inserting a split/condition/test branch instead of a single plain unit.
// Must resolve to a value in [0, 1].
func WithBranchiness(p float64) Option {
	return func(cfg *Config) { cfg.branchiness = p }
}

// WithMaxBranches caps how many branches a single split/condition/test
// segment may fan out into (minimum 2, since a one-branch split is a
// degenerate pass-through).
func WithMaxBranches(n int) Option {
	return func(cfg *Config) { cfg.maxBranches = n }
}

func (c Config) validate() error {
	if c.size < 1 {
		return ErrInvalidConfig
	}
	if c.branchiness < 0 || c.branchiness > 1 {
		return ErrInvalidConfig
	}
	if c.maxBranches < 2 {
		return ErrInvalidConfig
	}

	return nil
}

func (c Config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}
