package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrListNotFound  = errors.New("list not found")
	ErrInboxNotFound = errors.New("inbox list not found, please run the database migration")
	ErrEmptyTitle    = errors.New("task title is empty")
)
