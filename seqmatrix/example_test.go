package seqmatrix_test

import (
	"fmt"

	"github.com/verdantis/alnspace/seqmatrix"
)

// ExampleSeqMatrix_RemoveCols demonstrates in-place column deletion.
// Scenario:
//
//   - Four aligned rows of four columns each
//   - Columns 0 and 2 are dropped; the two surviving columns keep their order
//
// Complexity: O(rows·cols)
func ExampleSeqMatrix_RemoveCols() {
	m, _ := seqmatrix.New([]string{"atcg", "atgg", "atcc", "tagc"})

	_ = m.RemoveCols([]int{0, 2})

	rows, _ := m.Rows([]int{0, 1, 2, 3})
	fmt.Println("ncols:", m.NCols())
	for _, r := range rows {
		fmt.Println(r)
	}

	// Output:
	// ncols: 2
	// tg
	// tg
	// tc
	// ac
}

// ExampleSeqMatrix_Chunk demonstrates a contiguous column window with a
// negative start index counting from the end.
func ExampleSeqMatrix_Chunk() {
	m, _ := seqmatrix.New([]string{"atcg", "atgg"})

	chunk, _ := m.Chunk(-2, 2)
	fmt.Println(chunk)

	// Output:
	// [cg gg]
}
