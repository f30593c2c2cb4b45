// SPDX-License-Identifier: MIT
// Package: blockrand/redcap
//
// csv.go — CSV export and import in REDCap's randomization format.
//
// REDCap consumes one two-column file per factor:
//
//	redcap_randomization_number,redcap_randomization_group
//	1,0
//	2,1
//	...
//
// Files are named <prefix>_<NN>.csv with NN the 1-based factor number,
// zero-padded to at least two digits. Values pass through untransformed.
package redcap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/blockrand/factorial"
)

// HeaderNumber is the randomization-number column header REDCap expects.
const HeaderNumber = "redcap_randomization_number"

// HeaderGroup is the 0/1 assignment column header REDCap expects.
const HeaderGroup = "redcap_randomization_group"

// ErrBadHeader indicates a factor file whose header row is not the
// canonical REDCap pair.
var ErrBadHeader = errors.New("redcap: unexpected CSV header")

// ErrBadRecord indicates a data row that is not an (index, 0/1) pair.
var ErrBadRecord = errors.New("redcap: malformed CSV record")

// ErrBadIndex indicates randomization numbers that are not the
// contiguous sequence 1..N.
var ErrBadIndex = errors.New("redcap: randomization numbers must be contiguous from 1")

// ErrRowMismatch indicates factor files of differing lengths: they
// cannot come from one allocation table.
var ErrRowMismatch = errors.New("redcap: factor files disagree on row count")

// FileName returns the canonical file name for a factor: the 1-based
// factor number is zero-padded to at least two digits, matching the
// names REDCap project imports are usually scripted against.
func FileName(prefix string, factor int) string {
	return fmt.Sprintf("%s_%02d.csv", prefix, factor)
}

// Write exports t as one CSV file per factor and returns the written
// paths in factor order. The prefix may carry a directory component;
// existing files are overwritten.
//
// Complexity: O(N·k) rows written.
func Write(t *factorial.Table, prefix string) ([]string, error) {
	if t == nil {
		return nil, factorial.ErrNilTable
	}

	paths := make([]string, 0, t.FactorCount)
	for j := 1; j <= t.FactorCount; j++ {
		path := FileName(prefix, j)
		if err := writeFactor(path, t.Factors[j-1]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeFactor writes a single (index, value) column pair to path.
func writeFactor(path string, col []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("redcap: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	record := [2]string{HeaderNumber, HeaderGroup}
	if err = w.Write(record[:]); err != nil {
		f.Close()

		return fmt.Errorf("redcap: write %s: %w", path, err)
	}
	for i, v := range col {
		record[0] = strconv.Itoa(i + 1)
		record[1] = strconv.Itoa(int(v))
		if err = w.Write(record[:]); err != nil {
			f.Close()

			return fmt.Errorf("redcap: write %s: %w", path, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()

		return fmt.Errorf("redcap: flush %s: %w", path, err)
	}

	return f.Close()
}

// Read reconstructs an allocation table from the factorCount files
// previously written under prefix. The result carries Seed 0: the
// generating seed is not part of the CSV contract.
//
// Errors: factorial.ErrFactorCount for an out-of-range factorCount,
// ErrBadHeader / ErrBadRecord / ErrBadIndex for malformed files,
// ErrRowMismatch when the files disagree on length, plus wrapped I/O
// errors.
//
// Complexity: O(N·k) rows read.
func Read(prefix string, factorCount int) (*factorial.Table, error) {
	if factorCount < factorial.MinFactorCount || factorCount > factorial.MaxFactorCount {
		return nil, factorial.ErrFactorCount
	}

	cols := make([][]uint8, factorCount)
	for j := 1; j <= factorCount; j++ {
		col, err := readFactor(FileName(prefix, j))
		if err != nil {
			return nil, err
		}
		if j > 1 && len(col) != len(cols[0]) {
			return nil, ErrRowMismatch
		}
		cols[j-1] = col
	}

	return &factorial.Table{FactorCount: factorCount, Factors: cols}, nil
}

// readFactor parses one factor file back into its 0/1 column, checking
// the header and the contiguity of randomization numbers.
func readFactor(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("redcap: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("redcap: read %s: %w", path, err)
	}
	if len(records) == 0 || records[0][0] != HeaderNumber || records[0][1] != HeaderGroup {
		return nil, fmt.Errorf("%w: %s", ErrBadHeader, path)
	}

	col := make([]uint8, 0, len(records)-1)
	for i, rec := range records[1:] {
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d", ErrBadRecord, path, i+2)
		}
		if idx != i+1 {
			return nil, fmt.Errorf("%w: %s line %d", ErrBadIndex, path, i+2)
		}
		v, err := strconv.Atoi(rec[1])
		if err != nil || (v != 0 && v != 1) {
			return nil, fmt.Errorf("%w: %s line %d", ErrBadRecord, path, i+2)
		}
		col = append(col, uint8(v))
	}

	return col, nil
}
