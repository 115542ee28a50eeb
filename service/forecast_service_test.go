package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"se-server/dao/redis"
	"se-server/db"
	"se-server/forecasting"
	"se-server/models/forecast"
)

func newFixture(t *testing.T) (*ForecastService, *ProjectService, *ForecastRefresherService) {
	t.Helper()
	redisClient := db.NewMockRedisClient(context.Background())
	forecastDao := redis.NewRedisForecastDAO(redisClient)
	projectService := NewProjectService(redis.NewRedisProjectDAO(redisClient))
	return NewForecastService(forecastDao, projectService), projectService, NewForecastRefresherService(forecastDao)
}

func dailyRecords(loads ...float64) []forecast.LoadRecord {
	records := make([]forecast.LoadRecord, len(loads))
	for i, load := range loads {
		records[i] = forecast.LoadRecord{
			Timestamp: fmt.Sprintf("2023-01-%02d", i+1),
			Load:      load,
		}
	}
	return records
}

func TestForecastService_RunAndGet(t *testing.T) {
	forecastService, projectService, _ := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "")
	require.NoError(t, err)

	result, err := forecastService.RunForecast("alice", p.ID, "january", dailyRecords(10, 12, 14, 16, 18), 2, forecasting.MethodLinear)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 5, result.RecordCount)
	assert.Len(t, result.Points, 7)
	assert.Equal(t, forecast.TrendIncreasing, result.Stats.Trend)

	stored, err := forecastService.GetForecast("alice", result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, stored.ID)

	// Another owner cannot see it
	_, err = forecastService.GetForecast("bob", result.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForecastService_RunRequiresOwnedProject(t *testing.T) {
	forecastService, projectService, _ := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "")
	require.NoError(t, err)

	_, err = forecastService.RunForecast("bob", p.ID, "x", dailyRecords(10, 12, 14, 16, 18), 2, forecasting.MethodLinear)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = forecastService.RunForecast("alice", "missing", "x", dailyRecords(10, 12, 14, 16, 18), 2, forecasting.MethodLinear)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForecastService_PassesThroughEngineErrors(t *testing.T) {
	forecastService, projectService, _ := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "")
	require.NoError(t, err)

	_, err = forecastService.RunForecast("alice", p.ID, "x", dailyRecords(10, 12), 2, forecasting.MethodLinear)
	assert.ErrorIs(t, err, forecasting.ErrInsufficientData)
}

func TestForecastService_ListAndDelete(t *testing.T) {
	forecastService, projectService, _ := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "")
	require.NoError(t, err)

	first, err := forecastService.RunForecast("alice", p.ID, "a", dailyRecords(10, 12, 14, 16, 18), 1, forecasting.MethodLinear)
	require.NoError(t, err)
	_, err = forecastService.RunForecast("alice", p.ID, "b", dailyRecords(20, 20, 20, 20, 20), 1, forecasting.MethodMovingAverage)
	require.NoError(t, err)

	results, err := forecastService.ListForecasts("alice", p.ID)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.NoError(t, forecastService.DeleteForecast("alice", first.ID))
	results, err = forecastService.ListForecasts("alice", p.ID)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	assert.ErrorIs(t, forecastService.DeleteForecast("alice", first.ID), ErrNotFound)
}

func TestForecastRefresherService_RefreshKeepsHistoryAndID(t *testing.T) {
	forecastService, projectService, refresher := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "")
	require.NoError(t, err)

	result, err := forecastService.RunForecast("alice", p.ID, "january", dailyRecords(10, 12, 14, 16, 18), 2, forecasting.MethodLinear)
	require.NoError(t, err)

	require.NoError(t, refresher.RefreshStoredForecasts())

	refreshed, err := forecastService.GetForecast("alice", result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, refreshed.ID)
	assert.Equal(t, 5, refreshed.RecordCount)
	assert.Len(t, refreshed.Points, 7)
	// Historical loads survive the refresh untouched
	for i, load := range []float64{10, 12, 14, 16, 18} {
		require.NotNil(t, refreshed.Points[i].Historical)
		assert.Equal(t, load, *refreshed.Points[i].Historical)
	}
	assert.True(t, refreshed.CreatedAt.After(result.CreatedAt) || refreshed.CreatedAt.Equal(result.CreatedAt))
}

func TestProjectService_Update(t *testing.T) {
	_, projectService, _ := newFixture(t)

	p, err := projectService.CreateProject("alice", "substation", "old description")
	require.NoError(t, err)

	updated, err := projectService.UpdateProject("alice", p.ID, "feeder", "")
	require.NoError(t, err)
	assert.Equal(t, "feeder", updated.Name)
	assert.Equal(t, "old description", updated.Description)

	_, err = projectService.UpdateProject("bob", p.ID, "x", "")
	assert.ErrorIs(t, err, ErrNotFound)
}
