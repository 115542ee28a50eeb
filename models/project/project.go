package project

import (
	"fmt"
	"time"
)

// Project groups forecast runs under one owner.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Project) ToString() string {
	return fmt.Sprintf("Project(id=%s, name=%s, owner=%s)", p.ID, p.Name, p.Owner)
}
