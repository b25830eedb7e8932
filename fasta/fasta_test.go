package fasta_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdantis/alnspace/fasta"
	"github.com/verdantis/alnspace/seqmatrix"
)

const sample = `; alignment exported 2019-01-21
>seq1 Homo sapiens
atcg
atcg
>seq2
atgg
atgg
; trailing comment
>seq3_marker consensus mask
cccc
cccc
`

func TestParse_Records(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, "seq1", records[0].ID)
	require.Equal(t, "Homo sapiens", records[0].Description)
	require.Equal(t, "atcgatcg", records[0].Sequence)

	require.Equal(t, "seq2", records[1].ID)
	require.Empty(t, records[1].Description)
	require.Equal(t, "atggatgg", records[1].Sequence)

	require.Equal(t, "seq3_marker", records[2].ID)
	require.Equal(t, "consensus mask", records[2].Description)
}

func TestParse_LeadingJunkIgnored(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader("acgt\n>a\natcg\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "atcg", records[0].Sequence)
}

func TestParse_ConsecutiveHeaders(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(">a\n>b\natcg\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Empty(t, records[0].Sequence)
	require.Equal(t, "atcg", records[1].Sequence)
}

func TestParse_Empty(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestRecord_String(t *testing.T) {
	withDesc := fasta.Record{ID: "a", Description: "desc here", Sequence: "atcg"}
	require.Equal(t, ">a desc here\natcg", withDesc.String())

	bare := fasta.Record{ID: "a", Sequence: "atcg"}
	require.Equal(t, ">a\natcg", bare.String())
}

func TestRecord_LenCodePoints(t *testing.T) {
	require.Equal(t, 4, fasta.Record{Sequence: "αβγδ"}.Len())
}

func TestSplitByKeyword(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	samples, markers := fasta.SplitByKeyword(records, "_marker")
	require.Len(t, samples, 2)
	require.Len(t, markers, 1)
	require.Equal(t, "seq3_marker", markers[0].ID)

	all, none := fasta.SplitByKeyword(records, "")
	require.Len(t, all, 3)
	require.Empty(t, none)
}

func TestSequences_FeedsSeqMatrix(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	m, err := seqmatrix.New(fasta.Sequences(records))
	require.NoError(t, err)
	require.Equal(t, 3, m.NRows())
	require.Equal(t, 8, m.NCols())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.fasta")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	records, err := fasta.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := fasta.ParseFile(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
