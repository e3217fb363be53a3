// Package fibonacci provides two algorithmically equivalent Fibonacci
// implementations: a memoized recursive variant and a constant-space
// iterative variant. Both are pure functions; the memo table of the
// recursive variant is scoped to a single call, so the package holds no
// shared state and is safe for concurrent use.
package fibonacci

import "errors"

// MaxIndex is the largest index whose Fibonacci number fits in a uint64.
// F(94) overflows.
const MaxIndex = 93

var (
	// ErrNegativeIndex is returned when the requested index is negative.
	ErrNegativeIndex = errors.New("fibonacci index must be non-negative")

	// ErrIndexTooLarge is returned when the requested index exceeds MaxIndex.
	ErrIndexTooLarge = errors.New("fibonacci index exceeds uint64 range")
)

// Memoized computes the n-th Fibonacci number using recursion with a
// per-call memo table.
func Memoized(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeIndex
	}
	if n > MaxIndex {
		return 0, ErrIndexTooLarge
	}

	memo := make(map[int]uint64, n+1)
	return memoized(n, memo), nil
}

func memoized(n int, memo map[int]uint64) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if value, ok := memo[n]; ok {
		return value
	}

	value := memoized(n-1, memo) + memoized(n-2, memo)
	memo[n] = value
	return value
}

// Iterative computes the n-th Fibonacci number in constant space.
func Iterative(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeIndex
	}
	if n > MaxIndex {
		return 0, ErrIndexTooLarge
	}

	var previous, current uint64 = 0, 1
	for i := 0; i < n; i++ {
		previous, current = current, previous+current
	}
	return previous, nil
}

// Sequence returns the first count Fibonacci numbers, F(0) through
// F(count-1). count must be between 0 and MaxIndex+1.
func Sequence(count int) ([]uint64, error) {
	if count < 0 {
		return nil, ErrNegativeIndex
	}
	if count > MaxIndex+1 {
		return nil, ErrIndexTooLarge
	}

	sequence := make([]uint64, count)
	for i := range sequence {
		value, err := Iterative(i)
		if err != nil {
			return nil, err
		}
		sequence[i] = value
	}
	return sequence, nil
}
