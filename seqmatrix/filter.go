package seqmatrix

import (
	"unicode/utf8"

	"github.com/verdantis/alnspace/axis"
)

// filterMode selects which side of the membership predicate survives a filter.
// The remove/retain pairs share one filtering algorithm; the mode keeps the
// two entry points explicit instead of threading a boolean through.
type filterMode int

const (
	modeRemove filterMode = iota // positions in the id set are dropped
	modeRetain                   // positions in the id set are kept
)

// survives reports whether position i passes the filter for the given id set.
func (f filterMode) survives(member []bool, i int) bool {
	if f == modeRetain {
		return member[i]
	}

	return !member[i]
}

// membership normalizes ids against size and returns a membership table.
func membership(ids []int, size int) ([]bool, error) {
	norm, err := axis.NormalizeAll(ids, size)
	if err != nil {
		return nil, err
	}
	member := make([]bool, size)
	for _, id := range norm {
		member[id] = true
	}

	return member, nil
}

// RemoveRows deletes the rows at the given indices in place.
// The row count is recomputed from the surviving set.
func (m *SeqMatrix) RemoveRows(ids []int) error { return m.filterRows(ids, modeRemove) }

// RetainRows keeps only the rows at the given indices, in their original
// order, and deletes the rest in place.
func (m *SeqMatrix) RetainRows(ids []int) error { return m.filterRows(ids, modeRetain) }

func (m *SeqMatrix) filterRows(ids []int, mode filterMode) error {
	if m.nrows == 0 {
		return ErrEmptyMatrix
	}
	member, err := membership(ids, m.nrows)
	if err != nil {
		return err
	}
	kept := m.rows[:0]
	for i, row := range m.rows {
		if mode.survives(member, i) {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	m.nrows = len(kept)
	if m.nrows == 0 {
		m.ncols = 0
	}

	return nil
}

// RemoveCols deletes the columns at the given code-point positions from every
// row in place. The column count is recomputed from the first surviving row.
func (m *SeqMatrix) RemoveCols(ids []int) error { return m.filterCols(ids, modeRemove) }

// RetainCols keeps only the columns at the given code-point positions, in
// their original order, and deletes the rest from every row in place.
func (m *SeqMatrix) RetainCols(ids []int) error { return m.filterCols(ids, modeRetain) }

func (m *SeqMatrix) filterCols(ids []int, mode filterMode) error {
	if m.nrows == 0 {
		return ErrEmptyMatrix
	}
	member, err := membership(ids, m.ncols)
	if err != nil {
		return err
	}
	for r, row := range m.rows {
		runes := []rune(row)
		kept := runes[:0]
		for i, c := range runes {
			if mode.survives(member, i) {
				kept = append(kept, c)
			}
		}
		m.rows[r] = string(kept)
	}
	// The same predicate ran on every row, so the first row's length is the
	// shared column count.
	m.ncols = utf8.RuneCountInString(m.rows[0])

	return nil
}

// InvertRows returns the ascending complement of the given row id set over
// [0, NRows()). Negative ids are normalized first.
func (m *SeqMatrix) InvertRows(ids []int) ([]int, error) {
	if m.nrows == 0 {
		return nil, ErrEmptyMatrix
	}
	norm, err := axis.NormalizeAll(ids, m.nrows)
	if err != nil {
		return nil, err
	}

	return axis.Complement(norm, m.nrows), nil
}

// InvertCols returns the ascending complement of the given column id set over
// [0, NCols()). Negative ids are normalized first.
func (m *SeqMatrix) InvertCols(ids []int) ([]int, error) {
	if m.nrows == 0 {
		return nil, ErrEmptyMatrix
	}
	norm, err := axis.NormalizeAll(ids, m.ncols)
	if err != nil {
		return nil, err
	}

	return axis.Complement(norm, m.ncols), nil
}
