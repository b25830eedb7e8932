package seqmatrix

import (
	"fmt"
	"unicode/utf8"

	"github.com/verdantis/alnspace/axis"
)

// SeqMatrix is a rectangular matrix of equal-length character rows.
// rows holds the row strings in insertion order; nrows and ncols cache the
// row count and the shared code-point length (0 when there are no rows).
type SeqMatrix struct {
	rows  []string
	nrows int
	ncols int
}

// New constructs a SeqMatrix from the given rows, validating that every row
// has the same code-point count as the first. The input slice is copied.
// Returns ErrLengthMismatch citing both lengths on the first deviating row.
// Complexity: O(total input size).
func New(rows []string) (*SeqMatrix, error) {
	m := &SeqMatrix{rows: make([]string, len(rows)), nrows: len(rows)}
	copy(m.rows, rows)
	if m.nrows == 0 {
		return m, nil
	}
	m.ncols = utf8.RuneCountInString(rows[0])
	for i, r := range rows[1:] {
		if n := utf8.RuneCountInString(r); n != m.ncols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrLengthMismatch, i+1, n, m.ncols)
		}
	}

	return m, nil
}

// NRows returns the number of rows. Complexity: O(1).
func (m *SeqMatrix) NRows() int { return m.nrows }

// NCols returns the shared code-point length of the rows, or 0 when the
// matrix has no rows. Complexity: O(1).
func (m *SeqMatrix) NCols() int { return m.ncols }

// Row returns the row at index i. Negative i counts from the end.
func (m *SeqMatrix) Row(i int) (string, error) {
	if m.nrows == 0 {
		return "", ErrEmptyMatrix
	}
	n, err := axis.Normalize(i, m.nrows)
	if err != nil {
		return "", err
	}

	return m.rows[n], nil
}

// Rows returns the rows at the given indices, in the order supplied.
// Only the minimum and maximum of ids are validated against [0, NRows());
// duplicates and arbitrary order are permitted.
func (m *SeqMatrix) Rows(ids []int) ([]string, error) {
	if m.nrows == 0 {
		return nil, ErrEmptyMatrix
	}
	norm, err := axis.NormalizeAll(ids, m.nrows)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(norm))
	for k, id := range norm {
		out[k] = m.rows[id]
	}

	return out, nil
}

// Concat appends each other matrix's rows onto the receiver's rows
// column-wise: row i becomes m.Row(i) + others[0].Row(i) + ... Every operand
// must have the same row count as the receiver; the check runs over all
// operands before any row is touched. The column count is recomputed from
// the new first row. Complexity: O(total appended size).
func (m *SeqMatrix) Concat(others ...*SeqMatrix) error {
	for _, o := range others {
		if o.nrows != m.nrows {
			return fmt.Errorf("%w: got %d rows, want %d", ErrRowCountMismatch, o.nrows, m.nrows)
		}
	}
	for i := range m.rows {
		for _, o := range others {
			m.rows[i] += o.rows[i]
		}
	}
	if m.nrows > 0 {
		m.ncols = utf8.RuneCountInString(m.rows[0])
	}

	return nil
}

// Copy returns an independent deep copy of the matrix.
func (m *SeqMatrix) Copy() *SeqMatrix {
	rows := make([]string, len(m.rows))
	copy(rows, m.rows)

	return &SeqMatrix{rows: rows, nrows: m.nrows, ncols: m.ncols}
}
