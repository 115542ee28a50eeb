package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"se-server/dao/redis"
	"se-server/models/project"
)

// ErrNotFound marks lookups for entities that do not exist or belong to a
// different owner. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ProjectService owns project lifecycle and the owner-scoping rules.
type ProjectService struct {
	projectDao *redis.RedisProjectDAO
}

// NewProjectService constructs a ProjectService with its DAO dependency.
func NewProjectService(projectDao *redis.RedisProjectDAO) *ProjectService {
	return &ProjectService{projectDao: projectDao}
}

// CreateProject stores a new project for the owner.
func (ps *ProjectService) CreateProject(owner, name, description string) (*project.Project, error) {
	now := time.Now().UTC()
	p := project.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ps.projectDao.UpsertProject(p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return &p, nil
}

// GetProject retrieves a project the owner can see.
func (ps *ProjectService) GetProject(owner, id string) (*project.Project, error) {
	p, err := ps.projectDao.GetProject(id)
	if err != nil || p.Owner != owner {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListProjects returns the owner's projects.
func (ps *ProjectService) ListProjects(owner string) ([]project.Project, error) {
	return ps.projectDao.ListProjects(owner)
}

// UpdateProject applies non-empty name/description changes.
func (ps *ProjectService) UpdateProject(owner, id, name, description string) (*project.Project, error) {
	p, err := ps.GetProject(owner, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	p.UpdatedAt = time.Now().UTC()
	if err := ps.projectDao.UpsertProject(*p); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return p, nil
}

// DeleteProject removes a project the owner can see.
func (ps *ProjectService) DeleteProject(owner, id string) error {
	if _, err := ps.GetProject(owner, id); err != nil {
		return err
	}
	return ps.projectDao.DeleteProject(id)
}
