package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"se-server/db"
	"se-server/models/project"
)

const PROJECT_KEY_FORMAT_V1 = "project_v1:%s"

// RedisProjectDAO handles project persistence in Redis.
type RedisProjectDAO struct {
	client db.RedisClient
}

// NewRedisProjectDAO initializes a RedisProjectDAO with the Redis client.
func NewRedisProjectDAO(client db.RedisClient) *RedisProjectDAO {
	return &RedisProjectDAO{client: client}
}

// UpsertProject stores the project JSON under its ID.
func (dao *RedisProjectDAO) UpsertProject(p project.Project) error {
	key := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, p.ID)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project %s: %w", p.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set project in redis: %w", err)
	}
	return nil
}

// GetProject retrieves a project by ID.
func (dao *RedisProjectDAO) GetProject(id string) (*project.Project, error) {
	key := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get project from redis: %w", err)
	}
	var p project.Project
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project JSON: %w", err)
	}
	return &p, nil
}

// ListProjects returns all projects owned by the given user.
func (dao *RedisProjectDAO) ListProjects(owner string) ([]project.Project, error) {
	pattern := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list project keys: %w", err)
	}

	projects := make([]project.Project, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			continue
		}
		var p project.Project
		if err := json.Unmarshal([]byte(str), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project JSON for key %s: %w", k, err)
		}
		if p.Owner == owner {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// ListAllProjectIDs returns every stored project ID.
func (dao *RedisProjectDAO) ListAllProjectIDs() ([]string, error) {
	pattern := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list project keys: %w", err)
	}
	prefix := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteProject removes a project by ID.
func (dao *RedisProjectDAO) DeleteProject(id string) error {
	key := fmt.Sprintf(PROJECT_KEY_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete project key %s: %w", key, err)
	}
	return nil
}
