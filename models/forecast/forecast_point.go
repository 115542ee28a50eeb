package forecast

// ForecastPoint is one row of a combined historical+predicted series.
// Historical rows carry the original value with Confidence = 100 and a zero
// Predicted sentinel; future rows carry a nil Historical.
type ForecastPoint struct {
	Timestamp  string   `json:"timestamp"`
	Historical *float64 `json:"historical"`
	Predicted  float64  `json:"predicted"`
	Confidence float64  `json:"confidence"`
}

// IsHistorical reports whether the point carries an observed value.
func (p *ForecastPoint) IsHistorical() bool {
	return p.Historical != nil
}
