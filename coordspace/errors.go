package coordspace

import "errors"

var (
	// ErrInvalidBounds indicates a construction with start > stop;
	// the wrapped message carries both values.
	ErrInvalidBounds = errors.New("coordspace: start must not exceed stop")
	// ErrLengthMismatch indicates parallel data and label arrays of different lengths.
	ErrLengthMismatch = errors.New("coordspace: data and label arrays differ in length")
	// ErrEmptySpace indicates a Start query on a space with no coordinates.
	ErrEmptySpace = errors.New("coordspace: coordinate space is empty")
	// ErrInvalidLabel indicates a label other than "s" or "g";
	// the wrapped message names the offending label.
	ErrInvalidLabel = errors.New("coordspace: unsupported label")
	// ErrCoordValue indicates a stored value below -1; the wrapped message
	// carries the value.
	ErrCoordValue = errors.New("coordspace: unexpected coordinate value")
)
