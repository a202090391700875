package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskboard/api/internal/domain"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, title, description, status, user_id, created_at, updated_at`

func (r *TaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("find all tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Task", id)
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("find tasks by user: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+taskColumns,
		t.Title, t.Description, t.Status, t.UserID)

	created, err := scanTask(row)
	if err != nil {
		// FK backstop: the referenced user was deleted between the usecase
		// check and this insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, domain.NotFound("User", t.UserID)
		}
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $2, description = $3, status = $4, user_id = $5, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+taskColumns,
		t.ID, t.Title, t.Description, t.Status, t.UserID)

	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Task", t.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, domain.NotFound("User", t.UserID)
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Task", id)
	}
	return nil
}

func (r *TaskRepository) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete tasks by user: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func collectTasks(rows pgx.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
