package seqmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdantis/alnspace/axis"
	"github.com/verdantis/alnspace/seqmatrix"
)

func newTestMatrix(t *testing.T) *seqmatrix.SeqMatrix {
	t.Helper()
	m, err := seqmatrix.New([]string{"atcg", "atgg", "atcc", "tagc"})
	require.NoError(t, err)

	return m
}

func TestNew_Counts(t *testing.T) {
	m := newTestMatrix(t)
	require.Equal(t, 4, m.NRows())
	require.Equal(t, 4, m.NCols())
}

func TestNew_Empty(t *testing.T) {
	m, err := seqmatrix.New(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.NRows())
	require.Equal(t, 0, m.NCols())
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := seqmatrix.New([]string{"atcg", "at"})
	require.ErrorIs(t, err, seqmatrix.ErrLengthMismatch)
	// Both lengths appear in the message.
	require.Contains(t, err.Error(), "2")
	require.Contains(t, err.Error(), "4")
}

func TestNew_CodePointColumns(t *testing.T) {
	// Multi-byte code points count as single columns.
	m, err := seqmatrix.New([]string{"αβγδ", "atcg"})
	require.NoError(t, err)
	require.Equal(t, 4, m.NCols())
}

func TestRow_NegativeIndex(t *testing.T) {
	m := newTestMatrix(t)
	last, err := m.Row(-1)
	require.NoError(t, err)
	byPos, err := m.Row(m.NRows() - 1)
	require.NoError(t, err)
	require.Equal(t, byPos, last)
	require.Equal(t, "tagc", last)
}

func TestRows_OrderAndDuplicates(t *testing.T) {
	m := newTestMatrix(t)
	rows, err := m.Rows([]int{2, 0, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"atcc", "atcg", "atcc"}, rows)
}

func TestRows_OutOfRange(t *testing.T) {
	m := newTestMatrix(t)
	_, err := m.Rows([]int{0, 5})
	require.ErrorIs(t, err, axis.ErrOutOfRange)
	require.Contains(t, err.Error(), "5 not in [0, 4)")
}

func TestEmptyMatrix_IndexOpsFail(t *testing.T) {
	m, err := seqmatrix.New(nil)
	require.NoError(t, err)

	_, err = m.Row(0)
	require.ErrorIs(t, err, seqmatrix.ErrEmptyMatrix)
	_, err = m.Rows([]int{0})
	require.ErrorIs(t, err, seqmatrix.ErrEmptyMatrix)
	require.ErrorIs(t, m.RemoveRows([]int{0}), seqmatrix.ErrEmptyMatrix)
	require.ErrorIs(t, m.RetainCols([]int{0}), seqmatrix.ErrEmptyMatrix)
	require.ErrorIs(t, m.ReorderRows(nil), seqmatrix.ErrEmptyMatrix)
	_, err = m.Chunk(0, 1)
	require.ErrorIs(t, err, seqmatrix.ErrEmptyMatrix)
}

func TestRemoveCols_ScenarioRows(t *testing.T) {
	m := newTestMatrix(t)
	require.NoError(t, m.RemoveCols([]int{0, 2}))

	rows, err := m.Rows([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []string{"tg", "tg", "tc", "ac"}, rows)
	require.Equal(t, 2, m.NCols())
	require.Equal(t, 4, m.NRows())
}

func TestRemoveRows_EquivalentToRetainComplement(t *testing.T) {
	remove := newTestMatrix(t)
	retain := newTestMatrix(t)

	ids := []int{1, 3}
	comp, err := retain.InvertRows(ids)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, comp)

	require.NoError(t, remove.RemoveRows(ids))
	require.NoError(t, retain.RetainRows(comp))

	for i := 0; i < remove.NRows(); i++ {
		a, err := remove.Row(i)
		require.NoError(t, err)
		b, err := retain.Row(i)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
	require.Equal(t, 2, remove.NRows())
}

func TestRemoveRows_All(t *testing.T) {
	m := newTestMatrix(t)
	require.NoError(t, m.RemoveRows([]int{0, 1, 2, 3}))
	require.Equal(t, 0, m.NRows())
	require.Equal(t, 0, m.NCols())
}

func TestReorderRows_InverseRestores(t *testing.T) {
	m := newTestMatrix(t)
	orig := m.Copy()

	perm := []int{2, 0, 3, 1}
	inv := make([]int, len(perm))
	for k, p := range perm {
		inv[p] = k
	}

	require.NoError(t, m.ReorderRows(perm))
	require.NoError(t, m.ReorderRows(inv))

	for i := 0; i < m.NRows(); i++ {
		got, err := m.Row(i)
		require.NoError(t, err)
		want, err := orig.Row(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestReorderRows_GatherNotPermutation(t *testing.T) {
	m := newTestMatrix(t)
	// Repeats and omissions are allowed as long as the length matches.
	require.NoError(t, m.ReorderRows([]int{0, 0, 0, 0}))
	row, err := m.Row(3)
	require.NoError(t, err)
	require.Equal(t, "atcg", row)
}

func TestReorderRows_LengthMismatch(t *testing.T) {
	m := newTestMatrix(t)
	err := m.ReorderRows([]int{0, 1})
	require.ErrorIs(t, err, seqmatrix.ErrLengthMismatch)
}

func TestReorderCols_Reverse(t *testing.T) {
	m := newTestMatrix(t)
	require.NoError(t, m.ReorderCols([]int{3, 2, 1, 0}))
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, "gcta", row)
}

func TestChunk_Window(t *testing.T) {
	m := newTestMatrix(t)
	chunk, err := m.Chunk(1, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"tc", "tg", "tc", "ag"}, chunk)
}

func TestChunk_WindowOverrunsRow(t *testing.T) {
	m := newTestMatrix(t)
	_, err := m.Chunk(3, 2)
	require.ErrorIs(t, err, axis.ErrOutOfRange)
}

func TestChunk_BadSize(t *testing.T) {
	m := newTestMatrix(t)
	_, err := m.Chunk(0, 0)
	require.ErrorIs(t, err, seqmatrix.ErrChunkSize)
}

func TestChunks_PerID(t *testing.T) {
	m := newTestMatrix(t)
	chunks, err := m.Chunks([]int{2, 0}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"cg", "gg", "cc", "gc"},
		{"at", "at", "at", "ta"},
	}, chunks)
}

func TestCol_IsChunkSizeOne(t *testing.T) {
	m := newTestMatrix(t)
	col, err := m.Col(-1)
	require.NoError(t, err)
	require.Equal(t, []string{"g", "g", "c", "c"}, col)
}

func TestConcat_ColumnWise(t *testing.T) {
	a := newTestMatrix(t)
	b, err := seqmatrix.New([]string{"--", "--", "xy", "zw"})
	require.NoError(t, err)

	require.NoError(t, a.Concat(b))
	require.Equal(t, 6, a.NCols())
	row, err := a.Row(2)
	require.NoError(t, err)
	require.Equal(t, "atccxy", row)
}

func TestConcat_RowCountMismatch(t *testing.T) {
	a := newTestMatrix(t)
	b, err := seqmatrix.New([]string{"aa"})
	require.NoError(t, err)

	err = a.Concat(b)
	require.ErrorIs(t, err, seqmatrix.ErrRowCountMismatch)
	require.Contains(t, err.Error(), "want 4")
	// Validate-then-commit: the receiver is untouched.
	require.Equal(t, 4, a.NCols())
}

func TestInvertCols(t *testing.T) {
	m := newTestMatrix(t)
	comp, err := m.InvertCols([]int{1, -1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, comp)
}

func TestCopy_Independent(t *testing.T) {
	m := newTestMatrix(t)
	c := m.Copy()
	require.NoError(t, m.RemoveRows([]int{0}))
	require.Equal(t, 4, c.NRows())
	row, err := c.Row(0)
	require.NoError(t, err)
	require.Equal(t, "atcg", row)
}
