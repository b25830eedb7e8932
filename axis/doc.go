// Package axis provides signed-index arithmetic shared by every alnspace
// container: normalization of possibly-negative indices against a domain
// size, bulk min/max validation, and complement (inversion) of an index set.
//
// What:
//
//   - Normalize resolves a signed index i against a domain of a given size:
//     negative i means "from the end" (i resolves to size+i). The result is
//     guaranteed to lie in [0, size).
//   - NormalizeAll resolves a whole id list and validates only its minimum
//     and maximum against the valid range. Because every element lies between
//     the extremes, the two checks cover the entire list; duplicates and
//     arbitrary order are permitted and preserved.
//   - Complement returns the ascending positions of [0, size) absent from a
//     given id set — the building block for symmetric remove/retain pairs.
//
// Why:
//
//   - Row, column, relative-position and block indices all share the same
//     normalization and validation rules; keeping them here keeps the
//     containers free of duplicated bounds logic.
//
// Errors:
//
//   - ErrOutOfRange: an index falls outside [0, size) after normalization.
//     The wrapped message carries the offending index as given by the caller
//     and the valid range.
//
// Complexity: Normalize O(1); NormalizeAll O(n); Complement O(n + size).
package axis
