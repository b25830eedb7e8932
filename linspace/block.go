package linspace

import (
	"fmt"
	"strconv"
	"strings"
)

// Block is a labeled half-open integer interval [Start, Stop): it covers the
// positions Start..Stop with Stop excluded. A constructed Block always
// satisfies Start <= Stop; an empty interval (Start == Stop) is valid.
type Block struct {
	Label string
	Start int
	Stop  int
}

// NewBlock constructs a Block, rejecting start > stop with ErrInvalidBounds.
func NewBlock(label string, start, stop int) (Block, error) {
	if start > stop {
		return Block{}, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, start, stop)
	}

	return Block{Label: label, Start: start, Stop: stop}, nil
}

// Len returns the number of positions the block covers.
func (b Block) Len() int { return b.Stop - b.Start }

// Contains reports whether position i lies inside the block,
// i.e. Start <= i < Stop.
func (b Block) Contains(i int) bool { return i >= b.Start && i < b.Stop }

// ToArray expands the block into the explicit position list
// [Start, Start+1, ..., Stop-1]. An empty block expands to an empty slice.
func (b Block) ToArray() []int {
	out := make([]int, 0, b.Len())
	for i := b.Start; i < b.Stop; i++ {
		out = append(out, i)
	}

	return out
}

// CompressedString renders the block as "label=length".
func (b Block) CompressedString() string {
	return b.Label + "=" + strconv.Itoa(b.Len())
}

// ExtendedString renders the block as "label=start:stop".
func (b Block) ExtendedString() string {
	return b.Label + "=" + strconv.Itoa(b.Start) + ":" + strconv.Itoa(b.Stop)
}

// ArrayString renders the block as its label followed by the comma-separated
// explicit position list, e.g. "s=0,1,2".
func (b Block) ArrayString() string {
	var sb strings.Builder
	sb.WriteString(b.Label)
	sb.WriteByte('=')
	for i := b.Start; i < b.Stop; i++ {
		if i > b.Start {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(i))
	}

	return sb.String()
}

// String renders the extended form.
func (b Block) String() string { return b.ExtendedString() }
