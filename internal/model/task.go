package model

import "time"

// Priority is the optional importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is a single to-do item stored in Postgres.
type Task struct {
	ID           string
	Title        string
	Notes        *string
	ListID       string
	List         List // joined on read; TaskCount is not populated
	Priority     *Priority
	DueDate      *time.Time
	Completed    bool
	CompletedAt  *time.Time
	RawInput     *string // original utterance for voice-created tasks
	ParseWarning bool    // true when the title came from the heuristic fallback
	ParseErrors  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
