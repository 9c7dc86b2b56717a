package postgre

import (
	"database/sql"
	"fmt"

	"github.com/minakianandclaude/LifeTracker/internal/list/repository"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the list domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("list/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("list/repository/postgre.%s", method)
}
