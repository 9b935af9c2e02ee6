package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount_TwoDecimalPlaces(t *testing.T) {
	require.Equal(t, "25.00", FormatAmount(25.0))
	require.Equal(t, "0.00", FormatAmount(0))
	require.Equal(t, "33.33", FormatAmount(100.0/3))
	require.Equal(t, "16.67", FormatAmount(float64(5)/30*100))
}

func TestElapsedDays_TruncatesPartialDays(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	require.Equal(t, 0, ElapsedDays(start, start))
	require.Equal(t, 0, ElapsedDays(start, start.Add(23*time.Hour)))
	require.Equal(t, 1, ElapsedDays(start, start.Add(24*time.Hour)))
	require.Equal(t, 5, ElapsedDays(start, start.Add(5*Day+6*time.Hour)))
	require.Equal(t, 0, ElapsedDays(start, start.Add(-time.Hour)))
}

func TestFromUnixSeconds_ZeroForNonPositive(t *testing.T) {
	require.True(t, FromUnixSeconds(0).IsZero())
	require.True(t, FromUnixSeconds(-1).IsZero())
	require.Equal(t, int64(1700000000), FromUnixSeconds(1700000000).Unix())
}
