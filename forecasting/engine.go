package forecasting

import (
	"fmt"
	"math"
	"sort"
	"time"

	"se-server/models/forecast"
)

// Method selects the forecasting algorithm.
type Method string

const (
	MethodLinear        Method = "linear"
	MethodMovingAverage Method = "moving_average"
	MethodSeasonal      Method = "seasonal"
)

// seasonalPeriod is the fixed cycle length for naive seasonal averaging,
// an hourly-daily seasonality assumption.
const seasonalPeriod = 24

// movingAverageWindow caps the moving-average lookback.
const movingAverageWindow = 7

// ParseMethod validates a method name from the wire.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodLinear, MethodMovingAverage, MethodSeasonal:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown forecast method %q", s)
}

// Forecast produces one point per historical record followed by horizon
// future points, one per calendar day past the last record. Records are
// sorted ascending by timestamp first; fewer than MinRecords records is
// rejected here, at the boundary, so the per-method math can assume a
// populated series.
func Forecast(records []forecast.LoadRecord, horizon int, method Method) ([]forecast.ForecastPoint, error) {
	if len(records) < MinRecords {
		return nil, ErrInsufficientData
	}
	if horizon < 0 {
		return nil, fmt.Errorf("forecast horizon must not be negative, got %d", horizon)
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}

	sorted := sortByTimestamp(records)
	n := len(sorted)

	points := make([]forecast.ForecastPoint, 0, n+horizon)
	values := make([]float64, n)
	for i, rec := range sorted {
		load := rec.Load
		values[i] = load
		points = append(points, forecast.ForecastPoint{
			Timestamp:  rec.Timestamp,
			Historical: &load,
			Predicted:  0,
			Confidence: 100,
		})
	}

	base, layout := futureBase(sorted)
	for i := 1; i <= horizon; i++ {
		points = append(points, forecast.ForecastPoint{
			Timestamp:  base.AddDate(0, 0, i).Format(layout),
			Historical: nil,
			Predicted:  round2(predict(values, method, i)),
			Confidence: confidence(method, i),
		})
	}
	return points, nil
}

// predict computes the raw (unrounded) prediction for future step i >= 1.
func predict(values []float64, method Method, i int) float64 {
	switch method {
	case MethodMovingAverage:
		return predictMovingAverage(values)
	case MethodSeasonal:
		return predictSeasonal(values, i)
	default:
		return predictLinear(values, i)
	}
}

// predictLinear fits ordinary least squares of load against index position
// and extrapolates to index n-1+i.
func predictLinear(values []float64, i int) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for idx, y := range values {
		x := float64(idx)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	return slope*(n-1+float64(i)) + intercept
}

// predictMovingAverage returns the mean of the last min(7, n) values. The
// window does not slide forward over synthetic future points, so every
// future step gets the same prediction.
func predictMovingAverage(values []float64) float64 {
	window := movingAverageWindow
	if len(values) < window {
		window = len(values)
	}
	sum := 0.0
	for _, v := range values[len(values)-window:] {
		sum += v
	}
	return sum / float64(window)
}

// predictSeasonal averages the historical points whose position matches the
// future index modulo the seasonal period, falling back to the last observed
// value when the slot has no history.
func predictSeasonal(values []float64, i int) float64 {
	n := len(values)
	slot := (n - 1 + i) % seasonalPeriod
	sum, count := 0.0, 0
	for idx, v := range values {
		if idx%seasonalPeriod == slot {
			sum += v
			count++
		}
	}
	if count == 0 {
		return values[n-1]
	}
	return sum / float64(count)
}

// confidence decays linearly with horizon distance. These are heuristic
// display values, not statistical prediction intervals.
func confidence(method Method, i int) float64 {
	switch method {
	case MethodMovingAverage:
		return math.Max(50, 85-7*float64(i))
	case MethodSeasonal:
		return math.Max(55, 88-6*float64(i))
	default:
		return math.Max(60, 90-5*float64(i))
	}
}

// sortByTimestamp returns a copy sorted ascending by timestamp. Parseable
// timestamps order chronologically; anything unparseable falls back to
// lexicographic order after the parseable ones.
func sortByTimestamp(records []forecast.LoadRecord) []forecast.LoadRecord {
	sorted := make([]forecast.LoadRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _, iok := parseTimestamp(sorted[i].Timestamp)
		tj, _, jok := parseTimestamp(sorted[j].Timestamp)
		switch {
		case iok && jok:
			return ti.Before(tj)
		case iok:
			return true
		case jok:
			return false
		default:
			return sorted[i].Timestamp < sorted[j].Timestamp
		}
	})
	return sorted
}

// futureBase finds the timestamp future points count days from, reusing the
// layout of the last parseable record so exported stamps look like the input.
func futureBase(sorted []forecast.LoadRecord) (time.Time, string) {
	for i := len(sorted) - 1; i >= 0; i-- {
		if t, layout, ok := parseTimestamp(sorted[i].Timestamp); ok {
			return t, layout
		}
	}
	return time.Now().UTC().Truncate(24 * time.Hour), "2006-01-02"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
