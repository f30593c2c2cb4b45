// Package factorial builds balanced multi-factorial randomization
// tables: allocation lists in which k boolean factors are each exactly
// balanced (mean 0.5) within every contiguous block of 2^k rows.
//
// 🚀 What is factorial?
//
//	Given a requested list length L and a factor count k, Generate
//	produces a table of N = ceil(L / 2^k) · 2^k rows where:
//	  • every block of 2^k consecutive rows contains each of the 2^k
//	    factor combinations exactly once, in uniformly random order;
//	  • consequently every factor column holds exactly 2^(k-1) zeros
//	    and 2^(k-1) ones per block — balance is structural, not
//	    statistical;
//	  • rows carry a contiguous 1-based index (the randomization
//	    number consumed downstream, e.g. by REDCap).
//
// Algorithm Outline:
//  1. B = 2^k, R = ceil(L / B).
//  2. Draw R independent Fisher–Yates permutations of {0, …, B-1}
//     and concatenate them in block order (permutation engine +
//     sequence assembler).
//  3. Expand each combination value into its k-bit binary digits,
//     most-significant bit first: factor 1 is the highest-order bit
//     (bit decomposer).
//  4. Attach the 1-based row index and factor columns (table builder).
//
// VerifyBalance recomputes the per-block, per-factor arithmetic means
// independently of the generator; any deviation from exactly 0.5
// indicates a construction defect.
//
// Determinism:
//   - WithSeed(s), s ≠ 0 — same seed and (L, k) ⇒ identical table.
//   - WithRand(r)        — caller-supplied stream, full control.
//   - neither            — a fresh seed is drawn from crypto/rand and
//     recorded in Table.Seed so any run can be replayed.
//
// Complexity:
//
//	Generate:      O(N·k) time, O(N·k) memory (N output rows).
//	VerifyBalance: O(N·k) time, O(N/2^k · k) memory.
//
// Errors:
//   - ErrFactorCount — factor count outside [1, MaxFactorCount].
//   - ErrListLength  — requested list length < 1.
//   - ErrBlockLength — verifier input whose row count is not a
//     multiple of the block size 2^k.
//   - ErrNilTable    — verifier received a nil table.
//
// See example_test.go for runnable end-to-end usage.
package factorial
