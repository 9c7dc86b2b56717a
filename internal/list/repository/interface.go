package repository

import (
	"context"

	"github.com/minakianandclaude/LifeTracker/internal/model"
)

// Repository is the composed interface for the list domain data store.
type Repository interface {
	ListRepository
}

// ListRepository defines all data access methods for the List entity.
type ListRepository interface {
	// GetOneList returns a zero-value List (ID == "") when nothing matches.
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.List, error)
	// ListLists returns all lists ordered by position, with TaskCount populated.
	ListLists(ctx context.Context) ([]model.List, error)
}
