// Package linspace models a one-dimensional integer domain as an ordered list
// of labeled half-open intervals ("blocks"), compressed from and expandable to
// explicit coordinate/label arrays.
//
// What:
//
//   - Block is a labeled interval [Start, Stop); Stop is excluded and
//     Start <= Stop always holds for constructed blocks.
//   - BlockSpace is an ordered block list. Its operations assume (and never
//     re-check) that blocks appear in increasing, non-overlapping order and
//     together partition the represented domain.
//   - FromArrays compresses parallel coordinate and label arrays into the
//     minimal block list: a block extends while the label repeats AND the
//     coordinate is exactly the previous coordinate plus one; any other pair
//     closes the open block at prev+1 and opens a new one. ToArrays is the
//     exact inverse.
//   - Positional Extract/Remove/Retain address relative positions — 0-based
//     offsets into the expanded, block-order coordinate sequence, NOT the
//     blocks' own Start/Stop values. ExtractBlocks/RemoveBlocks/RetainBlocks
//     address the block list itself.
//
// Precondition:
//
//   - Within a single label run, coordinates must be strictly increasing by
//     exactly 1 for the run to merge into one block. Duplicate or
//     non-monotonic coordinates are not deduplicated; they fragment the
//     result. This matches the historical behavior and is deliberately left
//     undetected.
//
// Errors:
//
//   - ErrInvalidBounds: block construction with start > stop.
//   - ErrLengthMismatch: coordinate and label arrays of different lengths.
//   - ErrEmptySpace: lower/upper bound of an empty space (Len is 0, no error).
//   - ErrMixedLabels: simple string form of a space holding more than one
//     block label.
//   - axis.ErrOutOfRange: a relative position or block index outside its
//     valid range.
package linspace
