package forecast

import "fmt"

// LoadRecord is a single timestamped load measurement, optionally carrying
// weather covariates. Records are immutable once parsed.
type LoadRecord struct {
	Timestamp   string   `json:"timestamp"`
	Load        float64  `json:"load"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

func (r *LoadRecord) ToString() string {
	return fmt.Sprintf("LoadRecord(timestamp=%s, load=%f)", r.Timestamp, r.Load)
}
