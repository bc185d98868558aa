package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Seeds the default users and sample tasks for local development.
// Existing users are kept; tasks are always inserted.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	ctx := context.Background()

	seedUsers := []struct {
		name     string
		username string
		password string
	}{
		{"Admin User", "admin", "admin123"},
		{"John Doe", "john", "john123"},
		{"Jane Smith", "jane", "jane123"},
		{"Alice Johnson", "alice", "alice123"},
		{"Bob Wilson", "bob", "bob123"},
	}

	ids := make(map[string]int64)
	for _, su := range seedUsers {
		existing, err := userRepo.GetByUsername(ctx, su.username)
		if err == nil {
			ids[su.username] = existing.ID
			log.Printf("user %s already exists id=%d", su.username, existing.ID)
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("lookup user %s: %v", su.username, err)
		}

		hash, err := service.HashPassword(su.password)
		if err != nil {
			log.Fatalf("hash password for %s: %v", su.username, err)
		}
		u := &domain.User{Name: su.name, Username: su.username, PasswordHash: hash}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", su.username, err)
		}
		ids[su.username] = u.ID
		log.Printf("user created username=%s id=%d", su.username, u.ID)
	}

	seedTasks := []struct {
		title       string
		description string
		status      string
		deadline    string
		assignee    string
	}{
		{"Setup Development Environment", "Install and configure all necessary development tools", domain.StatusDone, "2024-08-01", "admin"},
		{"Design Database Schema", "Create ERD and design database tables for the application", domain.StatusInProgress, "2024-08-10", "john"},
		{"Implement User Authentication", "Build login/logout functionality with JWT tokens", domain.StatusTodo, "2024-08-15", "jane"},
		{"Create Task Management UI", "Build responsive frontend for task management", domain.StatusTodo, "2024-08-20", "alice"},
		{"Write API Documentation", "Document all API endpoints and usage examples", domain.StatusTodo, "2024-08-25", "bob"},
	}

	for _, st := range seedTasks {
		deadline, err := time.Parse(domain.DeadlineFormat, st.deadline)
		if err != nil {
			log.Fatalf("parse deadline %s: %v", st.deadline, err)
		}
		t := &domain.Task{
			Title:       st.title,
			Description: st.description,
			Status:      st.status,
			Deadline:    deadline,
			AssigneeID:  ids[st.assignee],
			CreatedBy:   ids["admin"],
		}
		if err := taskRepo.Create(ctx, t); err != nil {
			log.Fatalf("create task %q: %v", st.title, err)
		}
		log.Printf("task created id=%d title=%q", t.ID, t.Title)
	}

	log.Printf("seed completed: %d users, %d tasks", len(seedUsers), len(seedTasks))
}
