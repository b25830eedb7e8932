package coordspace

import (
	"fmt"

	"github.com/verdantis/alnspace/axis"
)

// Gap is the sentinel value marking a non-occupied position.
const Gap = -1

// Labels of the two states a position can be in.
const (
	LabelSeq = "s" // occupied coordinate
	LabelGap = "g" // gap
)

// CoordSpace stores a discrete linear space fully expanded: one signed
// integer per position, Gap (-1) for gaps.
type CoordSpace struct {
	coords []int
}

// New constructs a CoordSpace covering start..stop-1 as occupied coordinates.
// Returns ErrInvalidBounds when start > stop; start == stop yields an empty
// space.
func New(start, stop int) (*CoordSpace, error) {
	if start > stop {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, start, stop)
	}
	coords := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		coords = append(coords, i)
	}

	return &CoordSpace{coords: coords}, nil
}

// FromArrays constructs a CoordSpace from parallel data and label arrays:
// a "s" position stores its data value, a "g" position stores Gap regardless
// of its data value. Any other label fails with ErrInvalidLabel naming it.
func FromArrays(data []int, labels []string) (*CoordSpace, error) {
	if len(data) != len(labels) {
		return nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(data), len(labels))
	}
	coords := make([]int, len(data))
	for i, label := range labels {
		switch label {
		case LabelSeq:
			coords[i] = data[i]
		case LabelGap:
			coords[i] = Gap
		default:
			return nil, fmt.Errorf("%w: %q (use %q for sequence or %q for gap)", ErrInvalidLabel, label, LabelSeq, LabelGap)
		}
	}

	return &CoordSpace{coords: coords}, nil
}

// Extract gathers the stored values at the given relative positions, in the
// order supplied, into a new CoordSpace. Duplicates are allowed; negative
// positions count from the end. The receiver is left untouched.
func (c *CoordSpace) Extract(positions []int) (*CoordSpace, error) {
	norm, err := axis.NormalizeAll(positions, len(c.coords))
	if err != nil {
		return nil, err
	}
	coords := make([]int, len(norm))
	for k, p := range norm {
		coords[k] = c.coords[p]
	}

	return &CoordSpace{coords: coords}, nil
}

// Remove deletes the values at the given relative positions in place,
// preserving the stored order of the survivors.
func (c *CoordSpace) Remove(positions []int) error {
	member, err := c.membership(positions)
	if err != nil {
		return err
	}
	kept := c.coords[:0]
	for i, v := range c.coords {
		if !member[i] {
			kept = append(kept, v)
		}
	}
	c.coords = kept

	return nil
}

// Retain keeps only the values at the given relative positions in place, in
// stored order. Retaining an empty list empties the space.
func (c *CoordSpace) Retain(positions []int) error {
	member, err := c.membership(positions)
	if err != nil {
		return err
	}
	kept := c.coords[:0]
	for i, v := range c.coords {
		if member[i] {
			kept = append(kept, v)
		}
	}
	c.coords = kept

	return nil
}

func (c *CoordSpace) membership(positions []int) ([]bool, error) {
	norm, err := axis.NormalizeAll(positions, len(c.coords))
	if err != nil {
		return nil, err
	}
	member := make([]bool, len(c.coords))
	for _, p := range norm {
		member[p] = true
	}

	return member, nil
}

// Start returns the first stored value.
// Returns ErrEmptySpace when the space holds no coordinates.
func (c *CoordSpace) Start() (int, error) {
	if len(c.coords) == 0 {
		return 0, ErrEmptySpace
	}

	return c.coords[0], nil
}

// Stop returns the last stored value, or 0 when the space is empty.
func (c *CoordSpace) Stop() int {
	if len(c.coords) == 0 {
		return 0
	}

	return c.coords[len(c.coords)-1]
}

// LenAll returns the total number of positions.
func (c *CoordSpace) LenAll() int { return len(c.coords) }

// LenSeq returns the number of strictly positive values. A stored 0 counts
// toward neither LenSeq nor LenGap.
func (c *CoordSpace) LenSeq() int {
	n := 0
	for _, v := range c.coords {
		if v > 0 {
			n++
		}
	}

	return n
}

// LenGap returns the number of strictly negative values. A stored 0 counts
// toward neither LenSeq nor LenGap.
func (c *CoordSpace) LenGap() int {
	n := 0
	for _, v := range c.coords {
		if v < 0 {
			n++
		}
	}

	return n
}

// Coords returns a copy of the stored values.
func (c *CoordSpace) Coords() []int {
	out := make([]int, len(c.coords))
	copy(out, c.coords)

	return out
}

// Copy returns an independent deep copy of the space.
func (c *CoordSpace) Copy() *CoordSpace {
	return &CoordSpace{coords: c.Coords()}
}
