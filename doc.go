// Package blockrand generates balanced multi-factorial randomization
// lists for clinical and behavioral study designs — ready for import
// into REDCap or any allocation system that consumes per-factor 0/1
// assignments keyed by a randomization number.
//
// 🚀 What is blockrand?
//
//	A small, deterministic-on-demand library plus CLI that builds
//	allocation tables where every boolean factor is perfectly balanced:
//		• Block construction: each run of 2^k consecutive rows contains
//		  every factor combination exactly once, in random order
//		• Per-factor balance: every factor column averages exactly 0.5
//		  inside every block — by construction, and verifiable
//		• Seedable: explicit seed for reproducible lists, crypto-seeded
//		  by default for production draws
//		• REDCap export: one two-column CSV per factor, 1-based
//		  randomization numbers with no gaps
//
// ✨ Why choose blockrand?
//
//   - Exact balance, not approximate – the invariant is structural
//   - No hidden globals – randomness flows through WithSeed / WithRand
//   - Verifiable – VerifyBalance recomputes block means independently
//   - Pure Go core – no cgo, no services, single-shot computation
//
// Everything is organized under three subpackages and a CLI:
//
//	factorial/ — permutation engine, sequence assembly, bit
//	             decomposition, table building and balance verification
//	design/    — YAML study-design files (list length, factors, seed)
//	redcap/    — CSV export/import in REDCap's randomization format
//	cmd/blockrand — generate and verify lists from the command line
//
// Quick ASCII example (k = 2, one block):
//
//	row  factor_1  factor_2      combination
//	 1      1         0          2
//	 2      0         1          1
//	 3      1         1          3
//	 4      0         0          0
//
//	each column holds two 0s and two 1s: mean = 0.5 exactly.
//
// Dive into factorial/doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/blockrand/factorial
package blockrand
