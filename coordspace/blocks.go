package coordspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verdantis/alnspace/linspace"
)

// classify maps a stored value to its label: "s" for >= 0, "g" for the Gap
// sentinel. Anything below -1 is invalid.
func classify(v int) (string, error) {
	switch {
	case v >= 0:
		return LabelSeq, nil
	case v == Gap:
		return LabelGap, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrCoordValue, v)
	}
}

// FromBlocks constructs a CoordSpace by expanding the given blocks in order:
// a "s" block contributes its covered positions as occupied coordinates, a
// "g" block contributes its length in Gap sentinels. Any other label fails
// with ErrInvalidLabel naming it.
func FromBlocks(blocks []linspace.Block) (*CoordSpace, error) {
	coords := make([]int, 0)
	for _, b := range blocks {
		switch b.Label {
		case LabelSeq:
			for i := b.Start; i < b.Stop; i++ {
				coords = append(coords, i)
			}
		case LabelGap:
			for i := b.Start; i < b.Stop; i++ {
				coords = append(coords, Gap)
			}
		default:
			return nil, fmt.Errorf("%w: %q (use %q for sequence or %q for gap)", ErrInvalidLabel, b.Label, LabelSeq, LabelGap)
		}
	}

	return &CoordSpace{coords: coords}, nil
}

// ToBlocks derives the minimal run-length block list for the stored values.
// Occupied runs merge while each value is exactly the previous plus one and
// close as ("s", firstValue, lastValue+1). Gap runs merge unconditionally —
// the sentinel carries no coordinate — and close as ("g", 0, runLength).
// Any value below -1 fails with ErrCoordValue.
// Complexity: O(LenAll()).
func (c *CoordSpace) ToBlocks() ([]linspace.Block, error) {
	if len(c.coords) == 0 {
		return []linspace.Block{}, nil
	}
	label, err := classify(c.coords[0])
	if err != nil {
		return nil, err
	}
	var blocks []linspace.Block
	runStart, runLen := c.coords[0], 1
	for i := 1; i < len(c.coords); i++ {
		v := c.coords[i]
		l, err := classify(v)
		if err != nil {
			return nil, err
		}
		if l == label && (label == LabelGap || v == c.coords[i-1]+1) {
			runLen++
			continue // the open run extends
		}
		blocks = append(blocks, closeRun(label, runStart, c.coords[i-1], runLen))
		label, runStart, runLen = l, v, 1
	}
	blocks = append(blocks, closeRun(label, runStart, c.coords[len(c.coords)-1], runLen))

	return blocks, nil
}

// closeRun finishes an open run: sequence runs keep their coordinate anchors,
// gap runs are anchored at 0 and sized by the run length.
func closeRun(label string, startVal, lastVal, runLen int) linspace.Block {
	if label == LabelGap {
		return linspace.Block{Label: LabelGap, Start: 0, Stop: runLen}
	}

	return linspace.Block{Label: LabelSeq, Start: startVal, Stop: lastVal + 1}
}

// ToArrays returns the stored values alongside their labels.
// Any value below -1 fails with ErrCoordValue.
func (c *CoordSpace) ToArrays() ([]int, []string, error) {
	labels := make([]string, len(c.coords))
	for i, v := range c.coords {
		l, err := classify(v)
		if err != nil {
			return nil, nil, err
		}
		labels[i] = l
	}

	return c.Coords(), labels, nil
}

// ArrayString renders the stored values as a comma-separated list.
func (c *CoordSpace) ArrayString() string {
	parts := make([]string, len(c.coords))
	for i, v := range c.coords {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// ExtendedString renders the derived blocks' extended forms
// ("label=start:stop") joined by ",".
func (c *CoordSpace) ExtendedString() (string, error) {
	blocks, err := c.ToBlocks()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.ExtendedString()
	}

	return strings.Join(parts, ","), nil
}

// CompressedString renders the derived blocks' compressed forms
// ("label=length") joined by ",".
func (c *CoordSpace) CompressedString() (string, error) {
	blocks, err := c.ToBlocks()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.CompressedString()
	}

	return strings.Join(parts, ","), nil
}
