package linspace

import "fmt"

// FromArrays compresses parallel coordinate and label arrays into the minimal
// ordered block list exactly covering the input in traversal order.
//
// The scan keeps one open block seeded from the first pair. Each subsequent
// pair extends it only when the label repeats AND the coordinate is exactly
// the previous coordinate plus one; any other pair closes the open block at
// prev+1 and opens a new one. The final open block closes at lastCoord+1.
//
// Precondition: within a single label run, coordinates must be strictly
// increasing by exactly 1 to merge. Duplicate or non-monotonic coordinates
// are not detected; they fragment the result.
//
// Empty input compresses to an empty space. Returns ErrLengthMismatch when
// the arrays differ in length. Complexity: O(n).
func FromArrays(coords []int, labels []string) (*BlockSpace, error) {
	if len(coords) != len(labels) {
		return nil, fmt.Errorf("%w: %d coordinates, %d labels", ErrLengthMismatch, len(coords), len(labels))
	}
	if len(coords) == 0 {
		return &BlockSpace{}, nil
	}

	var blocks []Block
	label, start := labels[0], coords[0]
	for i := 1; i < len(coords); i++ {
		if labels[i] == label && coords[i] == coords[i-1]+1 {
			continue // the open block extends
		}
		blocks = append(blocks, Block{Label: label, Start: start, Stop: coords[i-1] + 1})
		label, start = labels[i], coords[i]
	}
	blocks = append(blocks, Block{Label: label, Start: start, Stop: coords[len(coords)-1] + 1})

	return &BlockSpace{blocks: blocks}, nil
}

// ToArrays expands the space back into parallel coordinate and label arrays:
// for each block, in order, it emits start..stop-1 paired with the block's
// label. It is the exact inverse of FromArrays on minimal spaces.
// Complexity: O(Len()).
func (s *BlockSpace) ToArrays() ([]int, []string) {
	n := s.Len()
	coords := make([]int, 0, n)
	labels := make([]string, 0, n)
	for _, b := range s.blocks {
		for i := b.Start; i < b.Stop; i++ {
			coords = append(coords, i)
			labels = append(labels, b.Label)
		}
	}

	return coords, labels
}
