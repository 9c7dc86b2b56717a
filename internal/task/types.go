package task

import (
	"time"

	"github.com/minakianandclaude/LifeTracker/internal/model"
)

// Patch is one field of a partial update.
// Set reports whether the client sent the field; a nil Value with Set clears it.
type Patch[T any] struct {
	Set   bool
	Value *T
}

// --- UseCase Inputs ---

type ListTasksInput struct {
	ListID    string
	Completed *bool
	Limit     int
	Offset    int
}

type CreateTaskInput struct {
	Title        string
	Notes        *string
	ListID       string // empty → inbox
	Priority     *model.Priority
	DueDate      *time.Time
	RawInput     *string
	ParseWarning bool
	ParseErrors  *string
}

type UpdateTaskInput struct {
	ID        string
	Title     *string
	Notes     Patch[string]
	ListID    *string
	Priority  Patch[model.Priority]
	DueDate   Patch[time.Time]
	Completed *bool
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type CreateTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
