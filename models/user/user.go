package user

import "time"

// User is a registered account. HashedPassword never serializes.
type User struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// StoredUser is the redis persistence shape; it carries the hash explicitly
// so the DAO round-trips it while API responses never do.
type StoredUser struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"hashed_password"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToUser converts the persisted shape back to the API-facing one.
func (s *StoredUser) ToUser() User {
	return User{
		Username:       s.Username,
		Email:          s.Email,
		HashedPassword: s.HashedPassword,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
	}
}

// FromUser builds the persisted shape.
func FromUser(u User) StoredUser {
	return StoredUser{
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}
