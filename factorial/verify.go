// Package factorial - balance verifier.
//
// Recomputes per-block factor means independently of the generator.
// The verifier reports; it never corrects. A mean other than exactly
// 0.5 means the generator (or a table reconstructed from external
// files) is defective, and tests should fail on it.
package factorial

// VerifyBalance partitions t's rows into contiguous blocks of size
// 2^FactorCount in original order and computes the arithmetic mean of
// every factor column within every block.
//
// Contracts:
//   - t must be non-nil, else ErrNilTable.
//   - t.FactorCount in [MinFactorCount, MaxFactorCount], else ErrFactorCount.
//   - Rows() must be a positive multiple of 2^FactorCount, else
//     ErrBlockLength; no partial block means are ever returned.
//
// Complexity: O(N·k) time, O(N/2^k · k) space.
func VerifyBalance(t *Table) (BlockMeans, error) {
	if t == nil {
		return BlockMeans{}, ErrNilTable
	}
	if t.FactorCount < MinFactorCount || t.FactorCount > MaxFactorCount {
		return BlockMeans{}, ErrFactorCount
	}

	var (
		blockSize = t.BlockSize()
		rows      = t.Rows()
	)
	if rows == 0 || rows%blockSize != 0 {
		return BlockMeans{}, ErrBlockLength
	}

	var (
		blocks = rows / blockSize
		means  = make([][]float64, blocks)
		b      int
		j      int
		i      int
		sum    int
	)
	for b = 0; b < blocks; b++ {
		means[b] = make([]float64, t.FactorCount)
		for j = 0; j < t.FactorCount; j++ {
			sum = 0
			for i = b * blockSize; i < (b+1)*blockSize; i++ {
				sum += int(t.Factors[j][i])
			}
			// blockSize is a power of two, so the division is exact in
			// float64 when the block is balanced.
			means[b][j] = float64(sum) / float64(blockSize)
		}
	}

	return BlockMeans{BlockSize: blockSize, Means: means}, nil
}
