// Package factorial - bit decomposer.
//
// Expands combination values into fixed-width binary columns. The bit
// width is exactly factorCount for the whole sequence: the expansion is
// explicit shift-and-mask arithmetic over k bits and never depends on
// the machine integer representation, so a value of 0 simply yields an
// all-zero row.
package factorial

// decompose expands every value of seq (each in [0, 2^factorCount-1])
// into its factorCount binary digits, most-significant bit first:
// column 0 (factor 1) holds bit k-1, column k-1 (factor k) holds bit 0.
//
// The result is column-major — one slice per factor — matching the
// Table layout and the per-factor CSV export downstream.
//
// Complexity: O(len(seq)·k) time and space.
func decompose(seq []int, factorCount int) [][]uint8 {
	cols := make([][]uint8, factorCount)

	var j int
	for j = 0; j < factorCount; j++ {
		cols[j] = make([]uint8, len(seq))
	}

	var (
		i     int
		v     int
		shift uint
	)
	for i, v = range seq {
		for j = 0; j < factorCount; j++ {
			// Factor j+1 is bit (k-1-j) of the combination value.
			shift = uint(factorCount - 1 - j)
			cols[j][i] = uint8(v>>shift) & 1
		}
	}

	return cols
}
