package linspace

import "errors"

var (
	// ErrInvalidBounds indicates a block construction with start > stop;
	// the wrapped message carries both values.
	ErrInvalidBounds = errors.New("linspace: start must not exceed stop")
	// ErrLengthMismatch indicates parallel coordinate and label arrays of different lengths.
	ErrLengthMismatch = errors.New("linspace: coordinate and label arrays differ in length")
	// ErrEmptySpace indicates a bound query on a space with no blocks.
	ErrEmptySpace = errors.New("linspace: linear space is empty")
	// ErrMixedLabels indicates a simple string form requested for a space with
	// more than one block label.
	ErrMixedLabels = errors.New("linspace: cannot represent a linear space with more than one block type")
)
