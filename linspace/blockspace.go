package linspace

// BlockSpace is an ordered list of Blocks compressing a 1-D integer domain.
// Every operation assumes — without re-checking after each mutation — that
// the blocks appear in increasing, non-overlapping order and together
// partition the represented domain.
type BlockSpace struct {
	blocks []Block
}

// New constructs a BlockSpace holding the single block [start, stop) with the
// given label. Returns ErrInvalidBounds when start > stop.
func New(start, stop int, label string) (*BlockSpace, error) {
	b, err := NewBlock(label, start, stop)
	if err != nil {
		return nil, err
	}

	return &BlockSpace{blocks: []Block{b}}, nil
}

// FromBlocks constructs a BlockSpace from an explicit block list. The list is
// copied; its ordering invariant is the caller's responsibility.
func FromBlocks(blocks []Block) *BlockSpace {
	bs := make([]Block, len(blocks))
	copy(bs, blocks)

	return &BlockSpace{blocks: bs}
}

// Blocks returns a copy of the block list.
func (s *BlockSpace) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)

	return out
}

// NBlocks returns the number of blocks.
func (s *BlockSpace) NBlocks() int { return len(s.blocks) }

// Len returns the total number of positions covered, i.e. the sum of
// Stop-Start over all blocks. An empty space has length 0; this is not an
// error.
func (s *BlockSpace) Len() int {
	total := 0
	for _, b := range s.blocks {
		total += b.Len()
	}

	return total
}

// LowerBound returns the first block's start.
// Returns ErrEmptySpace when the block list is empty.
func (s *BlockSpace) LowerBound() (int, error) {
	if len(s.blocks) == 0 {
		return 0, ErrEmptySpace
	}

	return s.blocks[0].Start, nil
}

// UpperBound returns the last block's stop. The bound itself is not part of
// the space. Returns ErrEmptySpace when the block list is empty.
func (s *BlockSpace) UpperBound() (int, error) {
	if len(s.blocks) == 0 {
		return 0, ErrEmptySpace
	}

	return s.blocks[len(s.blocks)-1].Stop, nil
}

// Copy returns an independent deep copy of the space.
func (s *BlockSpace) Copy() *BlockSpace {
	return FromBlocks(s.blocks)
}
