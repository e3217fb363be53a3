//go:build unit
// +build unit

package fibonacci

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacci_KnownValues(t *testing.T) {
	tests := []struct {
		index    int
		expected uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{50, 12586269025},
		{93, 12200160415121876738},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("F(%d)", tt.index), func(t *testing.T) {
			memoized, err := Memoized(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, memoized, "Memoized(%d)", tt.index)

			iterative, err := Iterative(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, iterative, "Iterative(%d)", tt.index)
		})
	}
}

func TestFibonacci_ImplementationsAgree(t *testing.T) {
	for n := 0; n <= MaxIndex; n++ {
		memoized, err := Memoized(n)
		require.NoError(t, err)

		iterative, err := Iterative(n)
		require.NoError(t, err)

		assert.Equal(t, iterative, memoized, "implementations disagree at index %d", n)
	}
}

func TestFibonacci_NegativeIndex(t *testing.T) {
	_, err := Memoized(-1)
	assert.ErrorIs(t, err, ErrNegativeIndex)

	_, err = Iterative(-1)
	assert.ErrorIs(t, err, ErrNegativeIndex)

	_, err = Sequence(-1)
	assert.ErrorIs(t, err, ErrNegativeIndex)
}

func TestFibonacci_IndexTooLarge(t *testing.T) {
	_, err := Memoized(MaxIndex + 1)
	assert.ErrorIs(t, err, ErrIndexTooLarge)

	_, err = Iterative(MaxIndex + 1)
	assert.ErrorIs(t, err, ErrIndexTooLarge)

	_, err = Sequence(MaxIndex + 2)
	assert.ErrorIs(t, err, ErrIndexTooLarge)
}

func TestSequence(t *testing.T) {
	sequence, err := Sequence(10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, sequence)

	empty, err := Sequence(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
