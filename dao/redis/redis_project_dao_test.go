package redis

import (
	"context"
	"testing"
	"time"

	"se-server/db"
	"se-server/models/project"
	"se-server/models/user"
)

func TestRedisProjectDAO_UpsertAndGet(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisProjectDAO(mockClient)

	p := project.Project{
		ID:          "proj-1",
		Name:        "Substation A",
		Description: "Feeder load forecasts",
		Owner:       "alice",
		CreatedAt:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := dao.UpsertProject(p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetProject("proj-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != p.Name || got.Owner != p.Owner {
		t.Errorf("Round trip mismatch: got %+v", got)
	}
}

func TestRedisProjectDAO_ListScopedToOwner(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisProjectDAO(mockClient)

	_ = dao.UpsertProject(project.Project{ID: "p1", Name: "A", Owner: "alice"})
	_ = dao.UpsertProject(project.Project{ID: "p2", Name: "B", Owner: "alice"})
	_ = dao.UpsertProject(project.Project{ID: "p3", Name: "C", Owner: "bob"})

	projects, err := dao.ListProjects("alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("Expected 2 projects for alice, got %d", len(projects))
	}
}

func TestRedisProjectDAO_Delete(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisProjectDAO(mockClient)

	_ = dao.UpsertProject(project.Project{ID: "p1", Name: "A", Owner: "alice"})
	if err := dao.DeleteProject("p1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := dao.GetProject("p1"); err == nil {
		t.Error("Expected deleted project to be missing")
	}
}

func TestRedisUserDAO_RoundTripKeepsHash(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisUserDAO(mockClient)

	u := user.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefg",
		IsActive:       true,
		CreatedAt:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := dao.UpsertUser(u); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetUser("alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.HashedPassword != u.HashedPassword {
		t.Error("Password hash did not survive persistence")
	}
	if !dao.UserExists("alice") {
		t.Error("Expected UserExists to report true")
	}
	if dao.UserExists("bob") {
		t.Error("Expected UserExists to report false for unknown user")
	}
}
