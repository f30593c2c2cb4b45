// SPDX-License-Identifier: MIT
// Package: blockrand/factorial
//
// types.go — sentinel errors, limits and result types.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generation and verification MUST NOT panic on user input;
//     validation panics are confined to option constructors (WithX...).

package factorial

import (
	"errors"
	"fmt"
)

// MinFactorCount is the smallest meaningful factorial design: a single
// boolean factor, randomized in blocks of two.
const MinFactorCount = 1

// MaxFactorCount bounds the design width. Block size grows as 2^k, so
// k = 16 already forces blocks of 65536 rows; larger designs are
// rejected rather than silently exhausting memory.
const MaxFactorCount = 16

// balanceTarget is the exact per-block column mean a balanced factor
// must exhibit: half zeros, half ones.
const balanceTarget = 0.5

// ErrFactorCount indicates a factor count outside [MinFactorCount, MaxFactorCount].
// Usage: if errors.Is(err, ErrFactorCount) { /* reject the design */ }.
var ErrFactorCount = errors.New("factorial: factor count must be between 1 and 16")

// ErrListLength indicates a requested list length below 1.
var ErrListLength = errors.New("factorial: list length must be at least 1")

// ErrBlockLength indicates a table whose row count is not a multiple of
// the block size 2^k; block means are undefined for partial blocks.
var ErrBlockLength = errors.New("factorial: row count is not a multiple of the block size")

// ErrNilTable indicates VerifyBalance received a nil table.
var ErrNilTable = errors.New("factorial: table must be non-nil")

// Table is an immutable allocation table: one row per participant slot,
// one 0/1 column per factor. Row i (0-based) carries the randomization
// number Index(i) = i+1.
//
// Factors is column-major: Factors[j][i] is the value of factor j+1 in
// row i. Factor 1 corresponds to the most significant bit of the row's
// combination value.
type Table struct {
	// FactorCount is k, the number of boolean factors (columns).
	FactorCount int

	// Seed is the seed that produced this table. Zero when the caller
	// supplied its own *rand.Rand via WithRand; otherwise non-zero and
	// sufficient to regenerate the identical table with WithSeed.
	Seed int64

	// Factors holds the k factor columns, each of length Rows().
	Factors [][]uint8
}

// Rows returns the number of rows in the table: always a multiple of
// 2^FactorCount and ≥ the originally requested list length.
func (t *Table) Rows() int {
	if len(t.Factors) == 0 {
		return 0
	}

	return len(t.Factors[0])
}

// Index returns the 1-based randomization number of row i.
func (t *Table) Index(i int) int { return i + 1 }

// Combination reconstructs row i's joint factor assignment as an
// integer in [0, 2^k-1], most-significant bit first (the inverse of the
// bit decomposition performed by Generate).
//
// Complexity: O(k).
func (t *Table) Combination(i int) int {
	var v int
	for j := 0; j < t.FactorCount; j++ {
		v = v<<1 | int(t.Factors[j][i])
	}

	return v
}

// FactorName returns the canonical column name for factor j (1-based):
// "factor_1" … "factor_k".
func (t *Table) FactorName(j int) string {
	return fmt.Sprintf("factor_%d", j)
}

// BlockSize returns 2^FactorCount, the length of one balanced block.
func (t *Table) BlockSize() int { return 1 << t.FactorCount }

// BlockMeans is the verifier's output: the arithmetic mean of every
// factor column within every block, in original block order.
type BlockMeans struct {
	// BlockSize is the 2^k block length the table was partitioned into.
	BlockSize int

	// Means[b][j] is the mean of factor j+1 within block b.
	Means [][]float64
}

// Blocks returns the number of blocks that were verified.
func (m BlockMeans) Blocks() int { return len(m.Means) }

// Balanced reports whether every block mean equals exactly 0.5.
// Block sizes are powers of two, so the true mean is exactly
// representable in float64 and equality is not subject to rounding.
func (m BlockMeans) Balanced() bool {
	for _, block := range m.Means {
		for _, mean := range block {
			if mean != balanceTarget {
				return false
			}
		}
	}

	return true
}
