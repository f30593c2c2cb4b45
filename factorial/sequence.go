// Package factorial - sequence assembler.
//
// Builds the flat combination sequence: R independently shuffled blocks
// of {0, …, B-1}, concatenated in block order. Rounding up to a whole
// number of blocks (never trimming back to the requested length) is
// what makes the balance invariant exact on every block.
package factorial

import "math/rand"

// blockCount returns R = ceil(listLength / blockSize): the number of
// whole blocks needed to reach or exceed the requested length.
//
// Complexity: O(1).
func blockCount(listLength, blockSize int) int {
	return (listLength + blockSize - 1) / blockSize
}

// assembleSequence concatenates blockCount(listLength, blockSize)
// independent random permutations of {0, …, blockSize-1}. The result
// has length R·B ≥ listLength and is never truncated: callers must
// accept the rounded-up length, otherwise trailing blocks would lose
// their bijection over the combination set.
//
// Complexity: O(R·B) time and space.
func assembleSequence(listLength, blockSize int, rng *rand.Rand) []int {
	var (
		reps = blockCount(listLength, blockSize)
		seq  = make([]int, 0, reps*blockSize)
		r    int
	)

	for r = 0; r < reps; r++ {
		seq = append(seq, permRange(blockSize, rng)...)
	}

	return seq
}
