package model

import "time"

// InboxListName is the name of the system list new tasks land in by default.
const InboxListName = "inbox"

// List groups tasks. Names are stored normalized (trimmed, lower case).
type List struct {
	ID          string
	Name        string
	IsSystem    bool
	IsDeletable bool
	Position    int
	TaskCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
