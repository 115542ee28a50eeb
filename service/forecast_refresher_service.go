package services

import (
	"log"
	"time"

	"se-server/dao/redis"
	"se-server/forecasting"
	"se-server/models/forecast"
)

// ForecastRefresherService periodically re-runs every stored forecast from
// its historical points, so cached runs keep a rolling future window instead
// of going stale as the horizon days pass.
type ForecastRefresherService struct {
	forecastDao *redis.RedisForecastDAO
}

// NewForecastRefresherService constructs a new refresher with dependencies.
func NewForecastRefresherService(forecastDao *redis.RedisForecastDAO) *ForecastRefresherService {
	return &ForecastRefresherService{forecastDao: forecastDao}
}

// StartPeriodicJob launches the background loop at the given interval.
func (fr *ForecastRefresherService) StartPeriodicJob(interval time.Duration) {
	go fr.startPeriodicJob(interval)
}

func (fr *ForecastRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ForecastRefresherService] Running periodic forecast refresher job.")
		if err := fr.RefreshStoredForecasts(); err != nil {
			log.Printf("[ForecastRefresherService] RefreshStoredForecasts returned error: %v", err)
		} else {
			log.Println("[ForecastRefresherService] RefreshStoredForecasts completed successfully.")
		}
	}
}

// RefreshStoredForecasts re-runs every cached result in place. Individual
// failures are logged and skipped so one bad entry cannot stall the rest.
func (fr *ForecastRefresherService) RefreshStoredForecasts() error {
	ids, err := fr.forecastDao.ListForecastResultIDs()
	if err != nil {
		log.Printf("[ForecastRefresherService] Error listing stored forecast IDs: %v", err)
		return err
	}
	log.Printf("[ForecastRefresherService] Found %d stored forecasts", len(ids))

	for _, id := range ids {
		if err := fr.refreshForecast(id); err != nil {
			log.Printf("[ForecastRefresherService] Refresh failed for %s: %v", id, err)
		}
	}
	return nil
}

// refreshForecast reloads one result, rebuilds its historical records, and
// stores a fresh run under the same ID.
func (fr *ForecastRefresherService) refreshForecast(id string) error {
	result, err := fr.forecastDao.GetForecastResult(id)
	if err != nil {
		return err
	}

	records := historicalRecords(result.Points)
	method, err := forecasting.ParseMethod(result.Method)
	if err != nil {
		return err
	}

	points, err := forecasting.Forecast(records, result.Horizon, method)
	if err != nil {
		return err
	}
	result.Points = points
	result.Stats = forecasting.Summarize(records, method)
	result.RecordCount = len(records)
	result.CreatedAt = time.Now().UTC()

	if err := fr.forecastDao.SetForecastResult(result); err != nil {
		return err
	}
	log.Printf("[ForecastRefresherService] Refreshed forecast %s (method=%s horizon=%d)",
		id, result.Method, result.Horizon)
	return nil
}

// historicalRecords strips predicted points, keeping only observed loads.
func historicalRecords(points []forecast.ForecastPoint) []forecast.LoadRecord {
	records := make([]forecast.LoadRecord, 0, len(points))
	for _, p := range points {
		if p.Historical == nil {
			continue
		}
		records = append(records, forecast.LoadRecord{
			Timestamp: p.Timestamp,
			Load:      *p.Historical,
		})
	}
	return records
}
