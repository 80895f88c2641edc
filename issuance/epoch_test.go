package issuance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/issuance-audit/inter"
)

func TestEpochAccountant(t *testing.T) {
	require := require.New(t)

	a := NewEpochAccountant()
	a.Seed(5, 100)

	t.Run("baseline", func(t *testing.T) {
		require.NoError(a.Accumulate(10, 0))
		require.NoError(a.Accumulate(10, 5))
		p, s := a.Current()
		require.Equal(uint64(20), p)
		require.Equal(uint64(10), s)

		require.NoError(a.OnEpochBoundary(0))
		p, s = a.Expected()
		require.Equal(uint64(120), p, "genesis burn folds into the baseline")
		require.Equal(uint64(10), s)

		p, s = a.Current()
		require.Zero(p)
		require.Zero(s)
	})

	t.Run("matching epoch", func(t *testing.T) {
		require.NoError(a.Accumulate(60, 4))
		require.NoError(a.Accumulate(60, 6))
		require.NoError(a.OnEpochBoundary(1))
	})

	t.Run("primary mismatch", func(t *testing.T) {
		require.NoError(a.Accumulate(121, 10))
		err := a.OnEpochBoundary(2)
		require.ErrorIs(err, ErrEpochAccountingMismatch)

		var ve *ViolationError
		require.True(errors.As(err, &ve))
		require.Equal(uint64(120), ve.Want)
		require.Equal(uint64(121), ve.Got)
		require.Contains(ve.Detail, "primary")

		p, s := a.Current()
		require.Zero(p, "accumulators reset even on mismatch")
		require.Zero(s)
	})

	t.Run("secondary mismatch", func(t *testing.T) {
		require.NoError(a.Accumulate(120, 9))
		err := a.OnEpochBoundary(3)
		require.ErrorIs(err, ErrEpochAccountingMismatch)

		var ve *ViolationError
		require.True(errors.As(err, &ve))
		require.Equal(uint64(10), ve.Want)
		require.Equal(uint64(9), ve.Got)
		require.Contains(ve.Detail, "secondary")
	})
}

func TestEpochAccountant_Overflow(t *testing.T) {
	require := require.New(t)

	a := NewEpochAccountant()
	require.NoError(a.Accumulate(math.MaxUint64, 0))
	require.ErrorIs(a.Accumulate(1, 0), inter.ErrValueOutOfRange)
	require.NoError(a.Accumulate(0, 1))
	require.NoError(a.Accumulate(0, math.MaxUint64-1))
	require.ErrorIs(a.Accumulate(0, 1), inter.ErrValueOutOfRange)

	b := NewEpochAccountant()
	b.Seed(0, 1)
	require.NoError(b.Accumulate(math.MaxUint64, 0))
	require.ErrorIs(b.OnEpochBoundary(0), inter.ErrValueOutOfRange)
}
