package seqmatrix

import (
	"fmt"

	"github.com/verdantis/alnspace/axis"
)

// ReorderRows rearranges the rows in place so that new row k is the old row
// ids[k]. The id list must have exactly NRows() entries; beyond that only the
// extremes are validated — the operation is a gather, not a permutation
// check, so ids may repeat or omit positions.
func (m *SeqMatrix) ReorderRows(ids []int) error {
	if m.nrows == 0 {
		return ErrEmptyMatrix
	}
	if len(ids) != m.nrows {
		return fmt.Errorf("%w: got %d row ids, want %d", ErrLengthMismatch, len(ids), m.nrows)
	}
	norm, err := axis.NormalizeAll(ids, m.nrows)
	if err != nil {
		return err
	}
	rows := make([]string, len(norm))
	for k, id := range norm {
		rows[k] = m.rows[id]
	}
	m.rows = rows

	return nil
}

// ReorderCols rearranges the columns of every row in place so that new column
// k is the old column ids[k]. The id list must have exactly NCols() entries;
// like ReorderRows this is a gather, not a permutation check.
func (m *SeqMatrix) ReorderCols(ids []int) error {
	if m.nrows == 0 {
		return ErrEmptyMatrix
	}
	if len(ids) != m.ncols {
		return fmt.Errorf("%w: got %d column ids, want %d", ErrLengthMismatch, len(ids), m.ncols)
	}
	norm, err := axis.NormalizeAll(ids, m.ncols)
	if err != nil {
		return err
	}
	for r, row := range m.rows {
		runes := []rune(row)
		out := make([]rune, len(norm))
		for k, id := range norm {
			out[k] = runes[id]
		}
		m.rows[r] = string(out)
	}

	return nil
}
