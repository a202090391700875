package repository

import (
	"context"

	"github.com/taskboard/api/internal/domain"
)

// Usecases depend on this interface, not a concrete store. Postgres is the
// production implementation; the in-memory one backs tests and local runs.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
