package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard/api/internal/domain"
)

type taskRecord struct {
	task domain.Task
	seq  uint64 // insertion order, tie-break for equal creation times
}

type TaskRepository struct {
	mu      sync.RWMutex
	tasks   map[string]taskRecord
	nextSeq uint64
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]taskRecord)}
}

func (r *TaskRepository) FindAll(_ context.Context) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.collect(func(taskRecord) bool { return true })
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })
	return toTasks(records), nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tasks[id]
	if !ok {
		return nil, domain.NotFound("Task", id)
	}
	t := rec.task
	return &t, nil
}

func (r *TaskRepository) FindByUserID(_ context.Context, userID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.collect(func(rec taskRecord) bool { return rec.task.UserID == userID })
	sort.Slice(records, func(i, j int) bool {
		if !records[i].task.CreatedAt.Equal(records[j].task.CreatedAt) {
			return records[i].task.CreatedAt.After(records[j].task.CreatedAt)
		}
		return records[i].seq > records[j].seq
	})
	return toTasks(records), nil
}

func (r *TaskRepository) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := domain.Task{
		ID:          uuid.NewString(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextSeq++
	r.tasks[created.ID] = taskRecord{task: created, seq: r.nextSeq}
	return &created, nil
}

func (r *TaskRepository) Update(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tasks[t.ID]
	if !ok {
		return nil, domain.NotFound("Task", t.ID)
	}

	rec.task.Title = t.Title
	rec.task.Description = t.Description
	rec.task.Status = t.Status
	rec.task.UserID = t.UserID
	rec.task.UpdatedAt = time.Now().UTC()
	r.tasks[t.ID] = rec

	updated := rec.task
	return &updated, nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.NotFound("Task", id)
	}
	delete(r.tasks, id)
	return nil
}

func (r *TaskRepository) DeleteByUserID(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, rec := range r.tasks {
		if rec.task.UserID == userID {
			delete(r.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *TaskRepository) collect(keep func(taskRecord) bool) []taskRecord {
	var records []taskRecord
	for _, rec := range r.tasks {
		if keep(rec) {
			records = append(records, rec)
		}
	}
	return records
}

func toTasks(records []taskRecord) []*domain.Task {
	tasks := make([]*domain.Task, len(records))
	for i := range records {
		t := records[i].task
		tasks[i] = &t
	}
	return tasks
}
