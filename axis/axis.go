package axis

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an index outside [0, size) after normalization.
// The wrapped message cites the index as supplied by the caller and the
// valid range, e.g. "axis: index out of range: 5 not in [0, 4)".
var ErrOutOfRange = errors.New("axis: index out of range")

// Normalize resolves a signed index against a domain of the given size.
// A negative index counts from the end: -1 is the last position.
// Returns ErrOutOfRange when the resolved index is still negative or >= size.
// Complexity: O(1).
func Normalize(i, size int) (int, error) {
	n := i
	if n < 0 {
		n += size
	}
	if n < 0 || n >= size {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, size)
	}

	return n, nil
}

// NormalizeAll resolves every id in ids against the given size and validates
// only the minimum and maximum of the resolved list. Every element lies
// between the extremes, so the two checks bound the whole list; duplicates
// and arbitrary order pass through untouched. The returned slice is freshly
// allocated and preserves input order. An empty list normalizes to an empty
// slice without error.
// Complexity: O(n).
func NormalizeAll(ids []int, size int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}
	out := make([]int, len(ids))
	lo, hi := 0, 0 // positions of the smallest and largest resolved ids
	for k, id := range ids {
		n := id
		if n < 0 {
			n += size
		}
		out[k] = n
		if n < out[lo] {
			lo = k
		}
		if n > out[hi] {
			hi = k
		}
	}
	// Validate extremes only; report the offending index as the caller gave it.
	if out[lo] < 0 {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, ids[lo], size)
	}
	if out[hi] >= size {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, ids[hi], size)
	}

	return out, nil
}

// Complement returns, in ascending order, every position of [0, size) that
// does not appear in ids. Ids are taken as already-normalized non-negative
// positions; out-of-range entries are ignored rather than reported, since the
// complement over [0, size) is unaffected by them.
// Complexity: O(n + size).
func Complement(ids []int, size int) []int {
	member := make([]bool, size)
	for _, id := range ids {
		if id >= 0 && id < size {
			member[id] = true
		}
	}
	out := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if !member[i] {
			out = append(out, i)
		}
	}

	return out
}
