package repository

import (
	"context"

	"github.com/taskboard/api/internal/domain"
)

type TaskRepository interface {
	FindAll(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByUserID returns the user's tasks ordered by creation time descending.
	FindByUserID(ctx context.Context, userID string) ([]*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUserID removes all tasks owned by userID. Used by the user
	// cascade delete; reports the number of tasks removed.
	DeleteByUserID(ctx context.Context, userID string) (int, error)
}
