package bitset

import (
	"errors"
	"testing"

	bb "github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMath(t *testing.T) {
	for i := 0; i <= 4*WordBits; i++ {
		assert.Equal(t, i/WordBits, WordIndex(i), "i=%d", i)
		assert.Equal(t, uint(i%WordBits), BitOffset(i), "i=%d", i)
	}
}

func TestWithSizeStartsCleared(t *testing.T) {
	for _, n := range []int{1, 32, WordBits, 128, 1000} {
		b := WithSize(n)
		for i := 0; i < n; i++ {
			require.False(t, b.Get(i), "size %d index %d", n, i)
		}
		assert.Equal(t, 0, b.Count())
		assert.Equal(t, n, b.Cap())
	}
}

func TestWithSizeWordCount(t *testing.T) {
	cases := []struct {
		capacity int
		words    int
	}{
		{0, 0},
		{1, 1},
		{WordBits - 1, 1},
		{WordBits, 1},
		{WordBits + 1, 2},
		{2 * WordBits, 2},
		{2*WordBits + 1, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.words, WithSize(tc.capacity).Len(), "capacity %d", tc.capacity)
	}
}

func TestWithSizeNegativePanics(t *testing.T) {
	assert.Panics(t, func() { WithSize(-1) })
}

func TestSetResetRoundTrip(t *testing.T) {
	const size = 128
	b := WithSize(size)
	for i := 0; i < size; i++ {
		b.Set(i)
		require.True(t, b.Get(i), "index %d", i)
	}
	assert.Equal(t, size, b.Count())
	for i := size - 1; i >= 0; i-- {
		b.Reset(i)
		require.False(t, b.Get(i), "index %d", i)
	}
	assert.Equal(t, 0, b.Count())
}

func TestSetTo(t *testing.T) {
	b := WithSize(70)
	for i := 0; i < 70; i++ {
		for _, v := range []bool{true, false, true} {
			b.SetTo(i, v)
			require.Equal(t, v, b.Get(i), "index %d value %v", i, v)
		}
	}
}

func TestSetLeavesNeighboursAlone(t *testing.T) {
	b := WithSize(3 * WordBits)
	b.Set(WordBits)
	assert.False(t, b.Get(WordBits-1))
	assert.True(t, b.Get(WordBits))
	assert.False(t, b.Get(WordBits+1))
	assert.Equal(t, uint(1), b.View().Word(1))
}

func TestFromIndicesSparse(t *testing.T) {
	b, err := FromIndices([]int{5, 40})
	require.NoError(t, err)
	assert.Equal(t, 40/WordBits+1, b.Len())
	assert.Equal(t, 41, b.Cap())
	assert.True(t, b.Get(5))
	assert.True(t, b.Get(40))
	for i := 0; i < 41; i++ {
		if i == 5 || i == 40 {
			continue
		}
		assert.False(t, b.Get(i), "index %d", i)
	}
}

func TestFromIndicesSizesByValue(t *testing.T) {
	large := 10 * WordBits
	b, err := FromIndices([]int{large})
	require.NoError(t, err)
	assert.Equal(t, 11, b.Len())
	assert.True(t, b.Get(large))
}

func TestFromIndicesEmpty(t *testing.T) {
	b, err := FromIndices(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Count())
}

func TestFromIndicesNegative(t *testing.T) {
	_, err := FromIndices([]int{3, -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestFromIndicesMatchesReference(t *testing.T) {
	indices := []int{0, 1, 63, 64, 65, 127, 200, 513, 1023}
	b, err := FromIndices(indices)
	require.NoError(t, err)

	ref := bb.New(uint(b.Cap()))
	for _, i := range indices {
		ref.Set(uint(i))
	}
	for i := 0; i < b.Cap(); i++ {
		require.Equal(t, ref.Test(uint(i)), b.Get(i), "index %d", i)
	}
	assert.Equal(t, int(ref.Count()), b.Count())
}

func TestOutOfRange(t *testing.T) {
	b := WithSize(WordBits)
	// bits in the last allocated word stay addressable.
	assert.NoError(t, b.Check(WordBits-1))

	for _, idx := range []int{WordBits, 5 * WordBits, -1} {
		err := b.Check(idx)
		require.Error(t, err)
		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, idx, ie.Index)
		assert.Equal(t, 1, ie.Words)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	assert.Panics(t, func() { b.Get(WordBits) })
	assert.Panics(t, func() { b.Set(WordBits) })
	assert.Panics(t, func() { b.Reset(WordBits) })
	assert.Panics(t, func() { b.SetTo(WordBits, true) })
}

func TestCopyFromAndSwap(t *testing.T) {
	a, err := FromIndices([]int{1, 2, 3})
	require.NoError(t, err)
	b := WithSize(a.Cap())

	b.CopyFrom(a)
	assert.Equal(t, a.View().Words(), b.View().Words())

	b.Reset(2)
	assert.True(t, a.Get(2), "copy must not alias")

	a.Swap(b)
	assert.False(t, a.Get(2))
	assert.True(t, b.Get(2))
}

func TestClear(t *testing.T) {
	b, err := FromIndices([]int{0, 100})
	require.NoError(t, err)
	b.Clear()
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, 101, b.Cap())
}
