package usecase_test

import (
	"context"

	"github.com/taskboard/api/internal/domain"
)

// ---- fakes ----

type fakeUserRepo struct {
	findAll       func(ctx context.Context) ([]*domain.User, error)
	findByID      func(ctx context.Context, id string) (*domain.User, error)
	findByEmail   func(ctx context.Context, email string) (*domain.User, error)
	existsByEmail func(ctx context.Context, email string) (bool, error)
	create        func(ctx context.Context, u *domain.User) (*domain.User, error)
	update        func(ctx context.Context, u *domain.User) (*domain.User, error)
	delete        func(ctx context.Context, id string) error
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*domain.User, error) {
	return r.findAll(ctx)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsByEmail(ctx, email)
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.create(ctx, u)
}

func (r *fakeUserRepo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.update(ctx, u)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type fakeTaskRepo struct {
	findAll        func(ctx context.Context) ([]*domain.Task, error)
	findByID       func(ctx context.Context, id string) (*domain.Task, error)
	findByUserID   func(ctx context.Context, userID string) ([]*domain.Task, error)
	create         func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	update         func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	delete         func(ctx context.Context, id string) error
	deleteByUserID func(ctx context.Context, userID string) (int, error)
}

func (r *fakeTaskRepo) FindAll(ctx context.Context) ([]*domain.Task, error) {
	return r.findAll(ctx)
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.findByID(ctx, id)
}

func (r *fakeTaskRepo) FindByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.findByUserID(ctx, userID)
}

func (r *fakeTaskRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	return r.create(ctx, t)
}

func (r *fakeTaskRepo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	return r.update(ctx, t)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *fakeTaskRepo) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	return r.deleteByUserID(ctx, userID)
}
