package repository

import (
	"time"

	"github.com/minakianandclaude/LifeTracker/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title        string
	Notes        *string
	ListID       string
	Priority     *model.Priority
	DueDate      *time.Time
	RawInput     *string
	ParseWarning bool
	ParseErrors  *string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Limit 0 means no limit.
type ListTasksOptions struct {
	ListID    string
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskOptions carries the full mutable state of a Task; every column is written.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Notes       *string
	ListID      string
	Priority    *model.Priority
	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
}
