package seqmatrix

import "errors"

var (
	// ErrEmptyMatrix indicates an index-dependent operation on a matrix with no rows.
	ErrEmptyMatrix = errors.New("seqmatrix: empty matrix")
	// ErrLengthMismatch indicates two lengths that were required to be equal differ;
	// the wrapped message carries both values.
	ErrLengthMismatch = errors.New("seqmatrix: length mismatch")
	// ErrRowCountMismatch indicates a concat operand whose row count differs from the receiver's.
	ErrRowCountMismatch = errors.New("seqmatrix: row count mismatch")
	// ErrChunkSize indicates a non-positive chunk size.
	ErrChunkSize = errors.New("seqmatrix: chunk size must be positive")
)
