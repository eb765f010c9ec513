package finance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampScore(t *testing.T) {
	require.Equal(t, 0, clampScore(-5))
	require.Equal(t, 0, clampScore(0))
	require.Equal(t, 55, clampScore(55))
	require.Equal(t, 100, clampScore(100))
	require.Equal(t, 100, clampScore(145))
}

func TestStatusForScoreTiers(t *testing.T) {
	cases := []struct {
		score int
		want  HealthStatus
	}{
		{100, HealthStatusExcellent},
		{80, HealthStatusExcellent},
		{79, HealthStatusGood},
		{60, HealthStatusGood},
		{59, HealthStatusWarning},
		{40, HealthStatusWarning},
		{39, HealthStatusCritical},
		{0, HealthStatusCritical},
	}
	for _, c := range cases {
		require.Equal(t, c.want, statusForScore(c.score), "score %d", c.score)
	}
}

func TestTrendBetweenDeadBand(t *testing.T) {
	require.Equal(t, TrendStable, trendBetween(104, 100))
	require.Equal(t, TrendStable, trendBetween(105, 100))
	require.Equal(t, TrendUp, trendBetween(106, 100))
	require.Equal(t, TrendStable, trendBetween(95, 100))
	require.Equal(t, TrendDown, trendBetween(94, 100))
}

func TestTrendBetweenZeroPrevious(t *testing.T) {
	require.Equal(t, TrendUp, trendBetween(1, 0))
	require.Equal(t, TrendDown, trendBetween(-1, 0))
	require.Equal(t, TrendStable, trendBetween(0, 0))
}

func TestModuleHealthClampsBeforeStatus(t *testing.T) {
	h := moduleHealth(130, TrendUp)
	require.Equal(t, 100, h.Score)
	require.Equal(t, HealthStatusExcellent, h.Status)
	require.Equal(t, TrendUp, h.Trend)

	h = moduleHealth(-10, TrendDown)
	require.Equal(t, 0, h.Score)
	require.Equal(t, HealthStatusCritical, h.Status)
}
