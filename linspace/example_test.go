package linspace_test

import (
	"fmt"

	"github.com/verdantis/alnspace/linspace"
)

// ExampleFromArrays demonstrates compression of parallel coordinate and
// label arrays.
// Scenario:
//
//   - Coordinates 0,1,2 run consecutively, then jump to 4,5
//   - The jump closes the first block at 3 and opens a second one
//
// Complexity: O(n)
func ExampleFromArrays() {
	s, _ := linspace.FromArrays(
		[]int{0, 1, 2, 4, 5},
		[]string{"a", "a", "a", "a", "a"},
	)
	fmt.Println(s.BlockString())

	// Output:
	// a=0:3;a=4:6
}

// ExampleBlockSpace_Remove demonstrates a positional edit: removing the
// relative position 2 splits the single block in two.
func ExampleBlockSpace_Remove() {
	s, _ := linspace.New(0, 6, "x")

	_ = s.Remove([]int{2})
	fmt.Println(s.BlockString())
	fmt.Println("len:", s.Len())

	// Output:
	// x=0:2;x=3:6
	// len: 5
}
