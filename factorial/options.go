// SPDX-License-Identifier: MIT
// Package: blockrand/factorial
//
// options.go — functional options for table generation.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics on user input.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.

package factorial

import "math/rand"

// Option customizes Generate by mutating a genConfig instance before
// table construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// genConfig carries the resolved randomness policy for one Generate call.
type genConfig struct {
	seed int64      // non-zero ⇒ deterministic stream from this seed
	rng  *rand.Rand // non-nil ⇒ caller-supplied stream, seed ignored
}

// WithSeed locks the permutation stream to a deterministic seed.
// Same seed + same (listLength, factorCount) ⇒ identical table.
// Seed 0 is reserved for the default policy (fresh crypto-random seed)
// and panics to surface the programmer error early.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	if seed == 0 {
		// Fail fast: a "deterministic" zero seed would silently fall
		// back to the random default.
		panic("factorial: WithSeed(0)")
	}
	return func(c *genConfig) {
		c.seed = seed
	}
}

// WithRand provides an explicit RNG for permutation draws. The caller
// owns the stream and its seed policy; Table.Seed will be zero.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("factorial: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}
