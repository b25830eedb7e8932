package linspace

import (
	"github.com/verdantis/alnspace/axis"
)

// Extract gathers the coordinates at the given relative positions — 0-based
// offsets into the expanded, block-order coordinate sequence — and
// re-compresses them into a new BlockSpace. Order is preserved and duplicate
// positions are allowed; negative positions count from the end. The receiver
// is left untouched. An empty position list extracts an empty space.
func (s *BlockSpace) Extract(positions []int) (*BlockSpace, error) {
	coords, labels, err := s.gather(positions)
	if err != nil {
		return nil, err
	}

	return FromArrays(coords, labels)
}

// Retain keeps only the positions in the given relative-position list,
// re-compressing the remainder in place. Retaining an empty list empties the
// space.
func (s *BlockSpace) Retain(positions []int) error {
	coords, labels, err := s.gather(positions)
	if err != nil {
		return err
	}
	next, err := FromArrays(coords, labels)
	if err != nil {
		return err
	}
	s.blocks = next.blocks

	return nil
}

// Remove deletes the positions in the given relative-position list in place.
// It is the complement of Retain: the survivors are the positions of
// [0, Len()) not named in the list.
func (s *BlockSpace) Remove(positions []int) error {
	norm, err := axis.NormalizeAll(positions, s.Len())
	if err != nil {
		return err
	}

	return s.Retain(axis.Complement(norm, s.Len()))
}

// gather expands the space and collects the coordinate/label pairs at the
// given relative positions, validating the extremes against [0, Len()).
func (s *BlockSpace) gather(positions []int) ([]int, []string, error) {
	norm, err := axis.NormalizeAll(positions, s.Len())
	if err != nil {
		return nil, nil, err
	}
	coords, labels := s.ToArrays()
	outCoords := make([]int, len(norm))
	outLabels := make([]string, len(norm))
	for k, p := range norm {
		outCoords[k] = coords[p]
		outLabels[k] = labels[p]
	}

	return outCoords, outLabels, nil
}

// ExtractBlocks gathers whole blocks by their indices in the block list
// (not relative positions) into a new BlockSpace. Duplicates and arbitrary
// order are allowed; negative indices count from the end.
func (s *BlockSpace) ExtractBlocks(ids []int) (*BlockSpace, error) {
	norm, err := axis.NormalizeAll(ids, len(s.blocks))
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, len(norm))
	for k, id := range norm {
		blocks[k] = s.blocks[id]
	}

	return &BlockSpace{blocks: blocks}, nil
}

// RetainBlocks keeps only the blocks at the given block indices, in the
// order supplied, in place.
func (s *BlockSpace) RetainBlocks(ids []int) error {
	next, err := s.ExtractBlocks(ids)
	if err != nil {
		return err
	}
	s.blocks = next.blocks

	return nil
}

// RemoveBlocks deletes the blocks at the given block indices in place.
// It delegates to RetainBlocks on the index complement.
func (s *BlockSpace) RemoveBlocks(ids []int) error {
	norm, err := axis.NormalizeAll(ids, len(s.blocks))
	if err != nil {
		return err
	}

	return s.RetainBlocks(axis.Complement(norm, len(s.blocks)))
}
