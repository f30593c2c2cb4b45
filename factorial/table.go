// Package factorial - table builder and canonical entry point.
package factorial

// Generate builds a balanced allocation table for a listLength-row,
// factorCount-factor design.
//
// Contracts:
//   - factorCount in [MinFactorCount, MaxFactorCount], else ErrFactorCount.
//   - listLength ≥ 1, else ErrListLength.
//   - The output has ceil(listLength / 2^k) · 2^k rows — the smallest
//     whole number of blocks covering the request; never fewer, never
//     trimmed. Row i carries randomization number i+1.
//   - Within every block of 2^k rows each factor combination appears
//     exactly once, so every factor column averages exactly 0.5 per
//     block (see VerifyBalance).
//
// Randomness: crypto-seeded by default; pass WithSeed for reproducible
// tables or WithRand to supply a stream. The effective seed is recorded
// in Table.Seed.
//
// Complexity: O(N·k) time and space, N = output rows.
func Generate(listLength, factorCount int, opts ...Option) (*Table, error) {
	if factorCount < MinFactorCount || factorCount > MaxFactorCount {
		return nil, ErrFactorCount
	}
	if listLength < 1 {
		return nil, ErrListLength
	}

	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rng, seed, err := resolveRNG(cfg)
	if err != nil {
		return nil, err
	}

	blockSize := 1 << factorCount
	seq := assembleSequence(listLength, blockSize, rng)

	return &Table{
		FactorCount: factorCount,
		Seed:        seed,
		Factors:     decompose(seq, factorCount),
	}, nil
}
