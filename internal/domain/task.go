package domain

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses is the closed set of accepted task statuses, in lifecycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description *string // nil means no description
	Status      Status
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
