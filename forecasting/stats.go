package forecasting

import (
	"math"

	"se-server/models/forecast"
)

// seasonalVarianceRatio flags seasonality when the variance of the per-slot
// means exceeds this share of their overall mean.
const seasonalVarianceRatio = 0.10

// trendThreshold is the relative change between the first and last third of
// the series that counts as a trend.
const trendThreshold = 0.05

// Summarize derives trend direction, a seasonality flag and back-tested
// error metrics for the given historical series. The method matters because
// accuracy, MAPE and RMSE are computed by re-running that method against
// held-out points rather than echoing canned numbers.
func Summarize(records []forecast.LoadRecord, method Method) forecast.ForecastStats {
	sorted := sortByTimestamp(records)
	values := make([]float64, len(sorted))
	for i, rec := range sorted {
		values[i] = rec.Load
	}

	stats := forecast.ForecastStats{
		Trend:    trend(values),
		Seasonal: seasonal(values),
	}
	if mape, rmse, ok := Backtest(values, method); ok {
		stats.MAPE = round2(mape)
		stats.RMSE = round2(rmse)
		stats.Accuracy = round2(math.Max(0, 100-mape))
	}
	return stats
}

// trend compares the mean of the first third of the series to the mean of
// the last third.
func trend(values []float64) string {
	third := len(values) / 3
	if third == 0 {
		return forecast.TrendStable
	}
	first := mean(values[:third])
	last := mean(values[len(values)-third:])
	if first == 0 {
		return forecast.TrendStable
	}
	change := (last - first) / first
	switch {
	case change > trendThreshold:
		return forecast.TrendIncreasing
	case change < -trendThreshold:
		return forecast.TrendDecreasing
	default:
		return forecast.TrendStable
	}
}

// seasonal computes per-slot averages over index mod 24 groups and flags
// seasonality when their variance exceeds 10% of their overall mean.
// Requires at least one full period of data.
func seasonal(values []float64) bool {
	if len(values) < seasonalPeriod {
		return false
	}
	sums := make([]float64, seasonalPeriod)
	counts := make([]int, seasonalPeriod)
	for i, v := range values {
		slot := i % seasonalPeriod
		sums[slot] += v
		counts[slot]++
	}
	means := make([]float64, 0, seasonalPeriod)
	for slot, c := range counts {
		if c > 0 {
			means = append(means, sums[slot]/float64(c))
		}
	}
	overall := mean(means)
	if overall == 0 {
		return false
	}
	return variance(means) > seasonalVarianceRatio*math.Abs(overall)
}

// Backtest holds out the last max(1, n/5) values, re-fits the method on the
// prefix and measures true MAPE and RMSE of the held-out predictions. It
// reports ok=false when the series is too short to hold anything out.
func Backtest(values []float64, method Method) (mape, rmse float64, ok bool) {
	n := len(values)
	holdout := n / 5
	if holdout < 1 {
		holdout = 1
	}
	train := values[:n-holdout]
	if len(train) < 2 {
		return 0, 0, false
	}

	var absPctSum, sqSum float64
	pctCount := 0
	for i := 1; i <= holdout; i++ {
		actual := values[n-holdout+i-1]
		predicted := predict(train, method, i)
		diff := predicted - actual
		sqSum += diff * diff
		if actual != 0 {
			absPctSum += math.Abs(diff/actual) * 100
			pctCount++
		}
	}
	rmse = math.Sqrt(sqSum / float64(holdout))
	if pctCount > 0 {
		mape = absPctSum / float64(pctCount)
	}
	return mape, rmse, true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values))
}
