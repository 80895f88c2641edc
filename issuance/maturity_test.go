package issuance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaturityBuffer(t *testing.T) {
	require := require.New(t)

	b := NewMaturityBuffer[int](MaturityDelay)
	var matured []int
	for h := 0; h <= 20; h++ {
		v, ok := b.Push(h)
		if h < MaturityDelay {
			require.False(ok, "height %d", h)
			require.Equal(h+1, b.Len())
			continue
		}
		require.True(ok, "height %d", h)
		require.Equal(h-MaturityDelay, v)
		require.Equal(MaturityDelay, b.Len())
		matured = append(matured, v)
	}
	require.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, matured)
}

func TestMaturityBuffer_DelayOne(t *testing.T) {
	require := require.New(t)

	b := NewMaturityBuffer[string](1)
	_, ok := b.Push("a")
	require.False(ok)
	v, ok := b.Push("b")
	require.True(ok)
	require.Equal("a", v)
	v, ok = b.Push("c")
	require.True(ok)
	require.Equal("b", v)
	require.Equal(1, b.Len())
}

func TestMaturityBuffer_InvalidDelay(t *testing.T) {
	require.Panics(t, func() { NewMaturityBuffer[int](0) })
	require.Panics(t, func() { NewMaturityBuffer[int](-3) })
}
