// Package seqmatrix implements a rectangular matrix of equal-length character
// rows — the in-memory form of a multiple sequence alignment.
//
// What:
//
//   - SeqMatrix owns an ordered list of row strings; every row holds the same
//     number of Unicode code points (columns are code-point positions, never
//     byte offsets).
//   - Row and column selection, deletion, retention and reordering, contiguous
//     column windows (chunks), and column-wise concatenation of matrices with
//     equal row counts.
//   - Full negative-index support: -1 addresses the last row or column.
//
// Why:
//
//   - Alignment pipelines slice the same matrix along both axes constantly;
//     keeping the bounds rules (and their deliberate economies) in one type
//     stops every caller from reimplementing them.
//
// Index rules:
//
//   - Single-index operations normalize and validate the index via axis.
//   - Bulk operations validate only the minimum and maximum of the id list;
//     since every element lies between the extremes, this covers the list.
//     Duplicates and arbitrary order are permitted and preserved.
//   - Reorders are gathers, not permutation checks: ids may repeat or omit
//     positions as long as the list length matches the axis size.
//   - Every index-dependent operation on an empty matrix fails with
//     ErrEmptyMatrix before any normalization is attempted.
//
// All mutating operations are validate-then-commit: a failing call leaves the
// matrix unchanged.
//
// Errors:
//
//   - ErrEmptyMatrix: index-dependent operation on a matrix with no rows.
//   - ErrLengthMismatch: construction row of deviating length, or a reorder
//     id list whose length differs from the axis size.
//   - ErrRowCountMismatch: concat operand with a different number of rows.
//   - ErrChunkSize: non-positive chunk size.
//   - axis.ErrOutOfRange: any index outside its valid range.
package seqmatrix
