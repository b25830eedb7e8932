package seqmatrix

import (
	"fmt"

	"github.com/verdantis/alnspace/axis"
)

// Chunk returns, for every row, the contiguous code-point window
// [id, id+size). Negative id counts from the end. The whole window must lie
// inside [0, NCols()).
func (m *SeqMatrix) Chunk(id, size int) ([]string, error) {
	if m.nrows == 0 {
		return nil, ErrEmptyMatrix
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrChunkSize, size)
	}
	n, err := axis.Normalize(id, m.ncols)
	if err != nil {
		return nil, err
	}
	if n+size > m.ncols {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", axis.ErrOutOfRange, n+size-1, m.ncols)
	}
	out := make([]string, m.nrows)
	for r, row := range m.rows {
		runes := []rune(row)
		out[r] = string(runes[n : n+size])
	}

	return out, nil
}

// Chunks returns one window list per requested column id: element k holds,
// for every row, the code-point window [ids[k], ids[k]+size). Only the largest
// window end is bounds-checked; the windows come back in the order supplied,
// duplicates allowed.
func (m *SeqMatrix) Chunks(ids []int, size int) ([][]string, error) {
	if m.nrows == 0 {
		return nil, ErrEmptyMatrix
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrChunkSize, size)
	}
	norm, err := axis.NormalizeAll(ids, m.ncols)
	if err != nil {
		return nil, err
	}
	// NormalizeAll bounds the extremes; the largest window end still needs to
	// fit inside the row.
	maxID := 0
	for _, n := range norm {
		if n > maxID {
			maxID = n
		}
	}
	if len(norm) > 0 && maxID+size > m.ncols {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", axis.ErrOutOfRange, maxID+size-1, m.ncols)
	}
	// Decode each row once, then gather every window from it.
	out := make([][]string, len(norm))
	for k := range norm {
		out[k] = make([]string, m.nrows)
	}
	for r, row := range m.rows {
		runes := []rune(row)
		for k, n := range norm {
			out[k][r] = string(runes[n : n+size])
		}
	}

	return out, nil
}

// Col returns column i as one single-code-point string per row.
// It is the size-1 specialization of Chunk.
func (m *SeqMatrix) Col(i int) ([]string, error) { return m.Chunk(i, 1) }

// Cols returns the requested columns, one single-code-point string list per
// id. It is the size-1 specialization of Chunks.
func (m *SeqMatrix) Cols(ids []int) ([][]string, error) { return m.Chunks(ids, 1) }
