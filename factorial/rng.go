// Package factorial - permutation engine shared by the generator.
//
// This file centralizes random permutation drawing for block assembly.
//
// Goals:
//   - Determinism on demand: same seed ⇒ identical permutations across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Uniformity: unbiased Fisher–Yates, each block drawn independently
//     and uniformly from all B! permutations.
//   - Safety: no panics; the only failure mode is the crypto seed read.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A single Generate call uses
//     one stream sequentially; do not share it across goroutines.
package factorial

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// newSeed draws a fresh non-zero seed from crypto/rand. Used when the
// caller requests no determinism, so that independent invocations
// produce independent lists.
//
// Complexity: O(1).
func newSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("factorial: read random seed: %w", err)
		}
		s := int64(binary.LittleEndian.Uint64(b[:]))
		// Zero is the sentinel for "no seed"; redraw on the 1-in-2^64 hit
		// so Table.Seed can always replay the run.
		if s != 0 {
			return s, nil
		}
	}
}

// resolveRNG turns a genConfig into a concrete stream plus the seed to
// record on the table. Policy:
//   - cfg.rng non-nil ⇒ use it verbatim, recorded seed 0;
//   - cfg.seed non-zero ⇒ deterministic stream from that seed;
//   - otherwise ⇒ fresh crypto-random seed, recorded for replay.
//
// Complexity: O(1).
func resolveRNG(cfg genConfig) (*rand.Rand, int64, error) {
	if cfg.rng != nil {
		return cfg.rng, 0, nil
	}

	seed := cfg.seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, 0, err
		}
	}

	return rand.New(rand.NewSource(seed)), seed, nil
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// Each of the len(a)! orderings is equally likely given a uniform rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	if n <= 1 {
		return
	}

	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns one uniformly random permutation of 0..n-1 drawn
// from rng. Successive calls on the same stream yield independent
// permutations, which is exactly the per-block independence the
// assembler relies on.
//
// Complexity: O(n) time, O(n) space (the returned slice).
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p
}
