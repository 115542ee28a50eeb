package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"se-server/db"
	"se-server/models/forecast"
)

const FORECAST_RESULT_KEY_FORMAT_V1 = "forecast_result_v1:%s"

// RedisForecastDAO caches forecast runs in Redis.
type RedisForecastDAO struct {
	client db.RedisClient
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient) *RedisForecastDAO {
	return &RedisForecastDAO{client: client}
}

// SetForecastResult stores a forecast run under its result ID.
func (dao *RedisForecastDAO) SetForecastResult(result *forecast.ForecastResult) error {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT_V1, result.ID)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast result %s: %w", result.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set forecast result in redis: %w", err)
	}
	return nil
}

// GetForecastResult retrieves a stored forecast run by its result ID.
func (dao *RedisForecastDAO) GetForecastResult(id string) (*forecast.ForecastResult, error) {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast result from redis: %w", err)
	}
	var result forecast.ForecastResult
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast result JSON: %w", err)
	}
	return &result, nil
}

// ListForecastResultIDs returns the IDs of every cached forecast run.
func (dao *RedisForecastDAO) ListForecastResultIDs() ([]string, error) {
	pattern := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast result keys: %w", err)
	}
	prefix := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// ListForecastResults returns every stored run for one project.
func (dao *RedisForecastDAO) ListForecastResults(projectID string) ([]forecast.ForecastResult, error) {
	ids, err := dao.ListForecastResultIDs()
	if err != nil {
		return nil, err
	}
	results := make([]forecast.ForecastResult, 0, len(ids))
	for _, id := range ids {
		result, err := dao.GetForecastResult(id)
		if err != nil {
			log.Printf("[RedisForecastDAO] Skipping unreadable result %s: %v", id, err)
			continue
		}
		if result.ProjectID == projectID {
			results = append(results, *result)
		}
	}
	return results, nil
}

// DeleteForecastResult removes a stored run.
func (dao *RedisForecastDAO) DeleteForecastResult(id string) error {
	key := fmt.Sprintf(FORECAST_RESULT_KEY_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast result key %s: %w", key, err)
	}
	log.Printf("[RedisForecastDAO] Deleted forecast result %s", id)
	return nil
}
