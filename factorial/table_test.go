package factorial_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/blockrand/factorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_InvalidArguments verifies the sentinel errors for
// out-of-range factor counts and list lengths.
func TestGenerate_InvalidArguments(t *testing.T) {
	_, err := factorial.Generate(10, 0)
	assert.ErrorIs(t, err, factorial.ErrFactorCount, "factorCount=0 must be rejected")

	_, err = factorial.Generate(10, -3)
	assert.ErrorIs(t, err, factorial.ErrFactorCount, "negative factorCount must be rejected")

	_, err = factorial.Generate(10, factorial.MaxFactorCount+1)
	assert.ErrorIs(t, err, factorial.ErrFactorCount, "factorCount above the cap must be rejected")

	_, err = factorial.Generate(0, 3)
	assert.ErrorIs(t, err, factorial.ErrListLength, "listLength=0 must be rejected")

	_, err = factorial.Generate(-1, 3)
	assert.ErrorIs(t, err, factorial.ErrListLength, "negative listLength must be rejected")
}

// TestGenerate_RowCountRounding verifies that the output row count is
// the smallest multiple of 2^k that covers the request.
func TestGenerate_RowCountRounding(t *testing.T) {
	cases := []struct {
		listLength  int
		factorCount int
		wantRows    int
	}{
		{listLength: 10, factorCount: 3, wantRows: 16},
		{listLength: 16, factorCount: 3, wantRows: 16},
		{listLength: 17, factorCount: 3, wantRows: 24},
		{listLength: 1, factorCount: 1, wantRows: 2},
		{listLength: 100, factorCount: 4, wantRows: 112},
		{listLength: 5, factorCount: 5, wantRows: 32},
	}

	for _, tc := range cases {
		tbl, err := factorial.Generate(tc.listLength, tc.factorCount, factorial.WithSeed(1))
		require.NoError(t, err, "valid arguments must not error")
		assert.Equal(t, tc.wantRows, tbl.Rows(), "L=%d k=%d must round up to %d rows",
			tc.listLength, tc.factorCount, tc.wantRows)
		assert.GreaterOrEqual(t, tbl.Rows(), tc.listLength, "output must cover the request")
		assert.Zero(t, tbl.Rows()%tbl.BlockSize(), "output must be whole blocks")
	}
}

// TestGenerate_IndexContiguity verifies the 1-based randomization
// numbers: contiguous, unique, starting at 1.
func TestGenerate_IndexContiguity(t *testing.T) {
	tbl, err := factorial.Generate(20, 2, factorial.WithSeed(5))
	require.NoError(t, err)

	for i := 0; i < tbl.Rows(); i++ {
		assert.Equal(t, i+1, tbl.Index(i), "row %d must carry randomization number %d", i, i+1)
	}
}

// TestGenerate_BlockBijection verifies the core invariant: every block
// of 2^k rows contains each combination value exactly once.
func TestGenerate_BlockBijection(t *testing.T) {
	tbl, err := factorial.Generate(50, 3, factorial.WithSeed(123))
	require.NoError(t, err)

	blockSize := tbl.BlockSize()
	require.Equal(t, 8, blockSize, "k=3 blocks have 8 rows")

	for b := 0; b < tbl.Rows()/blockSize; b++ {
		combos := make([]int, 0, blockSize)
		for i := b * blockSize; i < (b+1)*blockSize; i++ {
			combos = append(combos, tbl.Combination(i))
		}
		sort.Ints(combos)
		for v := 0; v < blockSize; v++ {
			assert.Equal(t, v, combos[v], "block %d must contain combination %d exactly once", b, v)
		}
	}
}

// TestGenerate_SingleFactor verifies the k=1 edge: one column, and
// every block of two rows holds exactly one 0 and one 1.
func TestGenerate_SingleFactor(t *testing.T) {
	tbl, err := factorial.Generate(9, 1, factorial.WithSeed(8))
	require.NoError(t, err)

	require.Len(t, tbl.Factors, 1, "k=1 yields exactly one factor column")
	require.Equal(t, 10, tbl.Rows(), "ceil(9/2)*2 = 10 rows")

	col := tbl.Factors[0]
	for b := 0; b < tbl.Rows()/2; b++ {
		assert.EqualValues(t, 1, col[2*b]+col[2*b+1], "block %d must hold one 0 and one 1", b)
	}
}

// TestGenerate_Deterministic verifies that a fixed seed reproduces the
// identical table, and distinct seeds produce distinct tables.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := factorial.Generate(64, 4, factorial.WithSeed(777))
	require.NoError(t, err)
	second, err := factorial.Generate(64, 4, factorial.WithSeed(777))
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed and arguments must reproduce the table")

	other, err := factorial.Generate(64, 4, factorial.WithSeed(778))
	require.NoError(t, err)
	assert.NotEqual(t, first.Factors, other.Factors, "different seeds must diverge")
}

// TestGenerate_SeedRecorded verifies the replayability contract:
// unseeded runs record a non-zero seed that regenerates the same table.
func TestGenerate_SeedRecorded(t *testing.T) {
	tbl, err := factorial.Generate(30, 3)
	require.NoError(t, err)
	require.NotZero(t, tbl.Seed, "an unseeded run must record its effective seed")

	replay, err := factorial.Generate(30, 3, factorial.WithSeed(tbl.Seed))
	require.NoError(t, err)
	assert.Equal(t, tbl.Factors, replay.Factors, "the recorded seed must replay the table")
}

// TestGenerate_WithRand verifies that a caller-supplied stream is
// honored and no seed is recorded for it.
func TestGenerate_WithRand(t *testing.T) {
	tbl, err := factorial.Generate(16, 2, factorial.WithRand(rand.New(rand.NewSource(31))))
	require.NoError(t, err)
	assert.Zero(t, tbl.Seed, "external streams record no seed")

	again, err := factorial.Generate(16, 2, factorial.WithRand(rand.New(rand.NewSource(31))))
	require.NoError(t, err)
	assert.Equal(t, tbl.Factors, again.Factors, "identical streams must reproduce the table")
}

// TestOptions_PanicOnMisuse verifies that option constructors fail fast
// on meaningless inputs.
func TestOptions_PanicOnMisuse(t *testing.T) {
	assert.Panics(t, func() { factorial.WithRand(nil) }, "WithRand(nil) must panic")
	assert.Panics(t, func() { factorial.WithSeed(0) }, "WithSeed(0) must panic")
}

// TestTable_CombinationRoundTrip verifies that Combination is the exact
// inverse of the bit decomposition for every row.
func TestTable_CombinationRoundTrip(t *testing.T) {
	tbl, err := factorial.Generate(32, 5, factorial.WithSeed(2))
	require.NoError(t, err)

	for i := 0; i < tbl.Rows(); i++ {
		v := tbl.Combination(i)
		require.GreaterOrEqual(t, v, 0, "combination must be non-negative")
		require.Less(t, v, tbl.BlockSize(), "combination must fit k bits")
		for j := 0; j < tbl.FactorCount; j++ {
			want := uint8(v>>(tbl.FactorCount-1-j)) & 1
			assert.Equal(t, want, tbl.Factors[j][i], "row %d factor %d must match bit %d", i, j+1, tbl.FactorCount-1-j)
		}
	}
}

// TestTable_FactorName verifies the canonical column naming.
func TestTable_FactorName(t *testing.T) {
	tbl, err := factorial.Generate(4, 2, factorial.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, "factor_1", tbl.FactorName(1), "first factor name")
	assert.Equal(t, "factor_2", tbl.FactorName(2), "second factor name")
}
