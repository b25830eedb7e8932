package seqmatrix_test

import (
	"strings"
	"testing"

	"github.com/verdantis/alnspace/seqmatrix"
)

// BenchmarkRetainCols measures a column retain that keeps every other
// column of a 100x10000 matrix.
// Complexity: O(rows x cols)
func BenchmarkRetainCols(b *testing.B) {
	const (
		nrows = 100
		ncols = 10_000
	)
	rows := make([]string, nrows)
	for i := range rows {
		rows[i] = strings.Repeat("acgt", ncols/4)
	}
	ids := make([]int, 0, ncols/2)
	for i := 0; i < ncols; i += 2 {
		ids = append(ids, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := seqmatrix.New(rows)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		b.StartTimer()
		if err = m.RetainCols(ids); err != nil {
			b.Fatalf("RetainCols failed: %v", err)
		}
	}
}

// BenchmarkChunks measures windowed extraction of 100 ten-column chunks
// from a wide matrix.
// Complexity: O(chunks x rows x size)
func BenchmarkChunks(b *testing.B) {
	const (
		nrows = 100
		ncols = 10_000
	)
	rows := make([]string, nrows)
	for i := range rows {
		rows[i] = strings.Repeat("acgt", ncols/4)
	}
	m, err := seqmatrix.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	ids := make([]int, 100)
	for i := range ids {
		ids[i] = i * 10
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Chunks(ids, 10); err != nil {
			b.Fatalf("Chunks failed: %v", err)
		}
	}
}
