package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/repository"
	"github.com/taskboard/api/internal/validation"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

type TaskUsecase struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

func NewTaskUsecase(tasks repository.TaskRepository, users repository.UserRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks, users: users}
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      domain.Status // empty = default to PENDING
	UserID      string
}

// UpdateTaskInput carries a sparse update: nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.Status
	UserID      *string
}

// ListTasks returns all tasks, or only the given user's tasks ordered by
// creation time descending when userID is non-empty.
func (u *TaskUsecase) ListTasks(ctx context.Context, userID string) ([]*domain.Task, error) {
	var (
		tasks []*domain.Task
		err   error
	)
	if userID != "" {
		tasks, err = u.tasks.FindByUserID(ctx, userID)
	} else {
		tasks, err = u.tasks.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (u *TaskUsecase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (u *TaskUsecase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if err := validation.RequiredText(input.Title, "Task title", maxTitleLen); err != nil {
		return nil, err
	}
	if input.Description != nil {
		if err := validation.OptionalText(*input.Description, "Task description", maxDescriptionLen); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domain.InvalidRequest("User ID is required")
	}
	if input.Status != "" {
		if err := validation.Status(input.Status); err != nil {
			return nil, err
		}
	}

	// Referential integrity: the task must point at a live user. The FK
	// constraint backstops the race with a concurrent user delete.
	if _, err := u.users.FindByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("verify user: %w", err)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	created, err := u.tasks.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		UserID:      input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (u *TaskUsecase) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	// Validate everything before touching the record.
	if input.Title != nil {
		if err := validation.RequiredText(*input.Title, "Task title", maxTitleLen); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validation.OptionalText(*input.Description, "Task description", maxDescriptionLen); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := validation.Status(*input.Status); err != nil {
			return nil, err
		}
	}
	if input.UserID != nil && *input.UserID != task.UserID {
		if _, err := u.users.FindByID(ctx, *input.UserID); err != nil {
			return nil, fmt.Errorf("verify user: %w", err)
		}
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.UserID != nil {
		task.UserID = *input.UserID
	}

	updated, err := u.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

// UpdateTaskStatus overwrites the status only.
func (u *TaskUsecase) UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	task, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if err := validation.Status(status); err != nil {
		return nil, err
	}

	task.Status = status
	updated, err := u.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return updated, nil
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, id string) error {
	if err := u.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
