package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"se-server/dao/redis"
	"se-server/forecasting"
	"se-server/models/forecast"
)

// ForecastService orchestrates a forecast run end to end: validate the
// project, run the engine, summarize, and persist the result.
type ForecastService struct {
	forecastDao    *redis.RedisForecastDAO
	projectService *ProjectService
}

// NewForecastService constructs a ForecastService with its dependencies.
func NewForecastService(forecastDao *redis.RedisForecastDAO, projectService *ProjectService) *ForecastService {
	return &ForecastService{
		forecastDao:    forecastDao,
		projectService: projectService,
	}
}

// RunForecast executes a forecast over the given records and stores the
// result under a fresh ID. Engine errors (too little data, bad method)
// pass through unwrapped so handlers can classify them.
func (fs *ForecastService) RunForecast(owner, projectID, name string, records []forecast.LoadRecord, horizon int, method forecasting.Method) (*forecast.ForecastResult, error) {
	if _, err := fs.projectService.GetProject(owner, projectID); err != nil {
		return nil, err
	}

	points, err := forecasting.Forecast(records, horizon, method)
	if err != nil {
		return nil, err
	}
	stats := forecasting.Summarize(records, method)

	result := &forecast.ForecastResult{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        name,
		Method:      string(method),
		Horizon:     horizon,
		Points:      points,
		Stats:       stats,
		RecordCount: len(records),
		CreatedAt:   time.Now().UTC(),
	}
	if err := fs.forecastDao.SetForecastResult(result); err != nil {
		return nil, fmt.Errorf("storing forecast result: %w", err)
	}
	log.Printf("[ForecastService] Stored forecast %s (project=%s method=%s horizon=%d records=%d)",
		result.ID, projectID, method, horizon, len(records))
	return result, nil
}

// GetForecast retrieves a stored run, enforcing project ownership.
func (fs *ForecastService) GetForecast(owner, id string) (*forecast.ForecastResult, error) {
	result, err := fs.forecastDao.GetForecastResult(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := fs.projectService.GetProject(owner, result.ProjectID); err != nil {
		return nil, ErrNotFound
	}
	return result, nil
}

// ListForecasts returns the stored runs for one of the owner's projects.
func (fs *ForecastService) ListForecasts(owner, projectID string) ([]forecast.ForecastResult, error) {
	if _, err := fs.projectService.GetProject(owner, projectID); err != nil {
		return nil, err
	}
	return fs.forecastDao.ListForecastResults(projectID)
}

// DeleteForecast removes a stored run the owner can see.
func (fs *ForecastService) DeleteForecast(owner, id string) error {
	if _, err := fs.GetForecast(owner, id); err != nil {
		return err
	}
	return fs.forecastDao.DeleteForecastResult(id)
}

// ExportForecast renders a stored run as CSV text.
func (fs *ForecastService) ExportForecast(owner, id string) (string, error) {
	result, err := fs.GetForecast(owner, id)
	if err != nil {
		return "", err
	}
	return forecasting.ExportCSV(result.Points), nil
}
