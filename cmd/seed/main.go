// seed inserts demo users and tasks into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/infrastructure/postgres"
	"github.com/taskboard/api/internal/usecase"
)

type userSpec struct {
	email string
	name  string
}

type taskSpec struct {
	owner       string // email of the owning user
	title       string
	description string
	status      domain.Status
}

var users = []userSpec{
	{"alice@example.com", "Alice Johnson"},
	{"bob@example.com", "Bob Martinez"},
	{"carol@example.com", "Carol Nguyen"},
}

var tasks = []taskSpec{
	{"alice@example.com", "Write onboarding doc", "Cover local setup and conventions", domain.StatusInProgress},
	{"alice@example.com", "Review Q3 roadmap", "", domain.StatusPending},
	{"alice@example.com", "Archive stale branches", "", domain.StatusCompleted},
	{"bob@example.com", "Fix flaky checkout test", "Fails roughly 1 in 20 runs on CI", domain.StatusInProgress},
	{"bob@example.com", "Upgrade payment SDK", "", domain.StatusPending},
	{"carol@example.com", "Draft incident postmortem", "Outage from last Tuesday", domain.StatusPending},
}

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	userUC := usecase.NewUserUsecase(userRepo, taskRepo)
	taskUC := usecase.NewTaskUsecase(taskRepo, userRepo)

	idsByEmail := make(map[string]string, len(users))
	for _, u := range users {
		created, err := userUC.CreateUser(ctx, usecase.CreateUserInput{Email: u.email, Name: u.name})
		if err != nil {
			if domain.IsConflict(err) {
				existing, findErr := userRepo.FindByEmail(ctx, u.email)
				if findErr != nil {
					log.Fatalf("find existing user %s: %v", u.email, findErr)
				}
				idsByEmail[u.email] = existing.ID
				fmt.Printf("user %s already seeded\n", u.email)
				continue
			}
			log.Fatalf("create user %s: %v", u.email, err)
		}
		idsByEmail[u.email] = created.ID
		fmt.Printf("created user %s (%s)\n", created.Email, created.ID)
	}

	for ti, t := range tasks {
		input := usecase.CreateTaskInput{
			Title:  t.title,
			Status: t.status,
			UserID: idsByEmail[t.owner],
		}
		if t.description != "" {
			desc := t.description
			input.Description = &desc
		}
		created, err := taskUC.CreateTask(ctx, input)
		if err != nil {
			log.Fatalf("create task %d: %v", ti+1, err)
		}
		fmt.Printf("created task %q (%s) for %s\n", created.Title, created.Status, t.owner)
	}
}
