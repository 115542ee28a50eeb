package forecast

import "time"

// ForecastResult is a stored forecast run: the combined series plus its
// summary stats, keyed by a generated ID and scoped to a project.
type ForecastResult struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	Method      string          `json:"method"`
	Horizon     int             `json:"horizon"`
	Points      []ForecastPoint `json:"points"`
	Stats       ForecastStats   `json:"stats"`
	RecordCount int             `json:"record_count"`
	CreatedAt   time.Time       `json:"created_at"`
}
