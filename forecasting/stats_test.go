package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"se-server/models/forecast"
)

func indexedRecords(loads []float64) []forecast.LoadRecord {
	records := make([]forecast.LoadRecord, len(loads))
	base := "2023-01-01T00:00:00"
	for i := range loads {
		// Hourly stamps keep the series sorted and index-aligned.
		records[i] = forecast.LoadRecord{
			Timestamp: timeAt(base, i),
			Load:      loads[i],
		}
	}
	return records
}

func timeAt(base string, hours int) string {
	t, _, ok := parseTimestamp(base)
	if !ok {
		panic("bad base timestamp in test")
	}
	return t.Add(time.Duration(hours) * time.Hour).Format("2006-01-02T15:04:05")
}

func TestSummarize_Trend(t *testing.T) {
	tests := []struct {
		name  string
		loads []float64
		want  string
	}{
		{"increasing", []float64{10, 12, 14, 16, 18}, forecast.TrendIncreasing},
		{"decreasing", []float64{18, 16, 14, 12, 10}, forecast.TrendDecreasing},
		{"stable", []float64{100, 101, 100, 99, 100}, forecast.TrendStable},
		{"too short for thirds", []float64{5, 50}, forecast.TrendStable},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stats := Summarize(indexedRecords(test.loads), MethodLinear)
			assert.Equal(t, test.want, stats.Trend)
		})
	}
}

func TestSummarize_SeasonalFlag(t *testing.T) {
	// Two full days of a strong hourly cycle.
	cyclic := make([]float64, 48)
	for i := range cyclic {
		cyclic[i] = 100 + 50*math.Sin(2*math.Pi*float64(i%24)/24)
	}
	flat := make([]float64, 48)
	for i := range flat {
		flat[i] = 100
	}

	assert.True(t, Summarize(indexedRecords(cyclic), MethodSeasonal).Seasonal)
	assert.False(t, Summarize(indexedRecords(flat), MethodSeasonal).Seasonal)

	// Below one full period the flag is always false.
	short := cyclic[:23]
	assert.False(t, Summarize(indexedRecords(short), MethodSeasonal).Seasonal)
}

func TestBacktest_PerfectLinearFit(t *testing.T) {
	// Slope +2 with no noise: held-out points are predicted exactly.
	values := []float64{10, 12, 14, 16, 18, 20, 22, 24, 26, 28}

	mape, rmse, ok := Backtest(values, MethodLinear)

	require.True(t, ok)
	assert.InDelta(t, 0.0, mape, 1e-9)
	assert.InDelta(t, 0.0, rmse, 1e-9)
}

func TestBacktest_ReportsRealError(t *testing.T) {
	// A flat moving average against a rising tail must show error.
	values := []float64{10, 10, 10, 10, 10, 10, 10, 10, 40, 40}

	mape, rmse, ok := Backtest(values, MethodMovingAverage)

	require.True(t, ok)
	assert.Greater(t, mape, 0.0)
	assert.Greater(t, rmse, 0.0)
}

func TestSummarize_AccuracyFromBacktest(t *testing.T) {
	values := []float64{10, 12, 14, 16, 18, 20, 22, 24, 26, 28}
	stats := Summarize(indexedRecords(values), MethodLinear)

	assert.Equal(t, 100.0, stats.Accuracy)
	assert.Equal(t, 0.0, stats.MAPE)
	assert.Equal(t, 0.0, stats.RMSE)
}
