// Package coordspace specializes the linspace idea for the common two-state
// case: every position is either an occupied ("sequence") coordinate or a gap.
//
// What:
//
//   - CoordSpace stores the domain fully expanded, one signed integer per
//     position. A value >= 0 is an occupied coordinate carrying that value;
//     the sentinel Gap (-1) marks a gap; any other negative value is invalid
//     and surfaces as ErrCoordValue when blocks are derived.
//   - Extract gathers positions in the order supplied; Remove and Retain
//     filter the stored sequence in place, preserving stored order.
//   - ToBlocks derives the minimal run-length blocks on demand using the same
//     merge rule as linspace.FromArrays, with one twist: consecutive gaps
//     merge unconditionally, and a gap run compresses to a "g" block spanning
//     [0, runLength) — the gap sentinel carries no coordinate to anchor on.
//
// Labels:
//
//   - Exactly two labels exist: "s" (sequence) and "g" (gap). Constructors
//     taking labels reject anything else with ErrInvalidLabel.
//
// Counting quirk (deliberately preserved):
//
//   - LenSeq counts values strictly greater than 0 and LenGap values strictly
//     less than 0, so a stored value of exactly 0 counts toward neither.
//
// Errors:
//
//   - ErrInvalidBounds: construction with start > stop.
//   - ErrLengthMismatch: parallel data and label arrays of different lengths.
//   - ErrEmptySpace: Start on an empty space (Stop returns 0 instead).
//   - ErrInvalidLabel: a label other than "s" or "g".
//   - ErrCoordValue: a stored value below -1 encountered while deriving blocks.
//   - axis.ErrOutOfRange: a relative position outside [0, LenAll()).
package coordspace
