package ledger

import (
	"math"
	"testing"

	"stableswap/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestOutAmount_Floors(t *testing.T) {
	cases := []struct {
		amount, rate, want int64
	}{
		{amount: 100, rate: 200, want: 200},
		{amount: 200, rate: 50, want: 100},
		{amount: 100, rate: 100, want: 100},
		{amount: 3, rate: 50, want: 1},
		{amount: 1, rate: 50, want: 0},
		{amount: 1, rate: 99, want: 0},
		{amount: 7, rate: 33, want: 2},
		{amount: 199, rate: 150, want: 298},
		{amount: math.MaxInt64, rate: 100, want: math.MaxInt64},
		{amount: math.MaxInt64, rate: 1, want: math.MaxInt64 / 100},
	}

	for _, tc := range cases {
		got, err := OutAmount(tc.amount, tc.rate)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "amount=%d rate=%d", tc.amount, tc.rate)
	}
}

func TestOutAmount_Overflow(t *testing.T) {
	_, err := OutAmount(math.MaxInt64, 101)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRatePrice(t *testing.T) {
	require.Equal(t, "2.00", RatePrice(200))
	require.Equal(t, "0.50", RatePrice(50))
	require.Equal(t, "1.37", RatePrice(137))
	require.Equal(t, "0.01", RatePrice(1))
}
