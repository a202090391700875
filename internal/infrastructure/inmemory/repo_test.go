package inmemory

import (
	"context"
	"testing"

	"github.com/taskboard/api/internal/domain"
)

func TestUserRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewUserRepository()

	u, err := repo.Create(context.Background(), &domain.User{Email: "a@b.com", Name: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Error("expected generated ID")
	}
	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Errorf("timestamps: created %v, updated %v", u.CreatedAt, u.UpdatedAt)
	}
}

func TestUserRepository_UpdateRejectsTakenEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first, _ := repo.Create(ctx, &domain.User{Email: "a@b.com", Name: "A"})
	second, _ := repo.Create(ctx, &domain.User{Email: "c@d.com", Name: "C"})

	second.Email = first.Email
	if _, err := repo.Update(ctx, second); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestTaskRepository_FindByUserID_NewestFirstWithStableTieBreak(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	// Created in rapid succession the timestamps may collide, so the
	// insertion sequence must break ties.
	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		task, err := repo.Create(ctx, &domain.Task{
			Title:  title,
			Status: domain.StatusPending,
			UserID: "u1",
		})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		ids = append(ids, task.ID)
	}

	got, err := repo.FindByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d tasks", len(got))
	}
	for i, want := range []string{ids[2], ids[1], ids[0]} {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Title, want)
		}
	}
}

func TestTaskRepository_DeleteByUserID_CountsOnlyOwnedTasks(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	repo.Create(ctx, &domain.Task{Title: "one", Status: domain.StatusPending, UserID: "u1"})
	repo.Create(ctx, &domain.Task{Title: "two", Status: domain.StatusPending, UserID: "u1"})
	kept, _ := repo.Create(ctx, &domain.Task{Title: "other", Status: domain.StatusPending, UserID: "u2"})

	n, err := repo.DeleteByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}
	if _, err := repo.FindByID(ctx, kept.ID); err != nil {
		t.Errorf("unrelated task removed: %v", err)
	}
}
