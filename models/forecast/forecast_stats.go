package forecast

// Trend direction of a historical series, first third vs last third.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// ForecastStats summarizes a historical series alongside its forecast.
// Accuracy, MAPE and RMSE come from a back-test against held-out points,
// they are recomputed on every run and never persisted on their own.
type ForecastStats struct {
	Accuracy float64 `json:"accuracy"`
	MAPE     float64 `json:"mape"`
	RMSE     float64 `json:"rmse"`
	Trend    string  `json:"trend"`
	Seasonal bool    `json:"seasonal"`
}
