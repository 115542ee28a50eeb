package redis

import (
	"encoding/json"
	"fmt"

	"se-server/db"
	"se-server/models/user"
)

const USER_KEY_FORMAT_V1 = "user_v1:%s"

// RedisUserDAO handles account persistence in Redis, keyed by username.
type RedisUserDAO struct {
	client db.RedisClient
}

// NewRedisUserDAO initializes a RedisUserDAO with the Redis client.
func NewRedisUserDAO(client db.RedisClient) *RedisUserDAO {
	return &RedisUserDAO{client: client}
}

// UpsertUser stores the account JSON under its username.
func (dao *RedisUserDAO) UpsertUser(u user.User) error {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, u.Username)
	data, err := json.Marshal(user.FromUser(u))
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", u.Username, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set user in redis: %w", err)
	}
	return nil
}

// GetUser retrieves an account by username.
func (dao *RedisUserDAO) GetUser(username string) (*user.User, error) {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, username)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from redis: %w", err)
	}
	var stored user.StoredUser
	if err := json.Unmarshal([]byte(str), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user JSON: %w", err)
	}
	u := stored.ToUser()
	return &u, nil
}

// UserExists reports whether an account with the username is stored.
func (dao *RedisUserDAO) UserExists(username string) bool {
	_, err := dao.GetUser(username)
	return err == nil
}
