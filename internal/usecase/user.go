package usecase

import (
	"context"
	"fmt"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/repository"
	"github.com/taskboard/api/internal/validation"
)

const maxNameLen = 255

type UserUsecase struct {
	users repository.UserRepository
	tasks repository.TaskRepository
}

func NewUserUsecase(users repository.UserRepository, tasks repository.TaskRepository) *UserUsecase {
	return &UserUsecase{users: users, tasks: tasks}
}

type CreateUserInput struct {
	Email string
	Name  string
}

// UpdateUserInput carries a sparse update: nil fields are left unchanged.
type UpdateUserInput struct {
	Email *string
	Name  *string
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (u *UserUsecase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := validation.Email(input.Email); err != nil {
		return nil, err
	}
	if err := validation.RequiredText(input.Name, "Name", maxNameLen); err != nil {
		return nil, err
	}

	// Case-sensitive exact match; the unique index backstops concurrent creates.
	exists, err := u.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.Conflict("email", input.Email)
	}

	created, err := u.users.Create(ctx, &domain.User{
		Email: input.Email,
		Name:  input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (u *UserUsecase) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Email != nil {
		if err := validation.Email(*input.Email); err != nil {
			return nil, err
		}
		if *input.Email != user.Email {
			holder, err := u.users.FindByEmail(ctx, *input.Email)
			if err != nil && !domain.IsNotFound(err) {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if holder != nil && holder.ID != user.ID {
				return nil, domain.Conflict("email", *input.Email)
			}
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		if err := validation.RequiredText(*input.Name, "Name", maxNameLen); err != nil {
			return nil, err
		}
		user.Name = *input.Name
	}

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// DeleteUser removes the user and cascades to every task it owns. The cascade
// is an explicit two-step delete so the invariant holds on any storage backend.
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if _, err := u.tasks.DeleteByUserID(ctx, id); err != nil {
		return fmt.Errorf("delete user tasks: %w", err)
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
