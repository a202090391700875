// Package inmemory provides map-backed repository implementations. They serve
// router-level tests and local runs without a database; semantics match the
// postgres repositories, including timestamp refresh and value-copy returns.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard/api/internal/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("User", id)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.NotFound("User", email)
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.Conflict("email", u.Email)
		}
	}

	now := time.Now().UTC()
	created := domain.User{
		ID:        uuid.NewString(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[created.ID] = created
	return &created, nil
}

func (r *UserRepository) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return nil, domain.NotFound("User", u.ID)
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return nil, domain.Conflict("email", u.Email)
		}
	}

	stored.Email = u.Email
	stored.Name = u.Name
	stored.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = stored
	return &stored, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.NotFound("User", id)
	}
	delete(r.users, id)
	return nil
}
