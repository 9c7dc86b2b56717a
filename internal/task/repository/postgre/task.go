package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/minakianandclaude/LifeTracker/internal/model"
	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

const taskColumns = `
	t.id, t.title, t.notes, t.list_id, t.priority, t.due_date, t.completed, t.completed_at,
	t.raw_input, t.parse_warning, t.parse_errors, t.created_at, t.updated_at,
	l.id, l.name, l.is_system, l.is_deletable, l.position, l.created_at, l.updated_at`

// CreateTask inserts a new Task row and returns it joined with its list.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		WITH t AS (
			INSERT INTO tasks (id, title, notes, list_id, priority, due_date, raw_input, parse_warning, parse_errors, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM t JOIN lists l ON l.id = t.list_id`

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Title, nullString(opt.Notes), opt.ListID, nullPriority(opt.Priority),
		nullTime(opt.DueDate), nullString(opt.RawInput), opt.ParseWarning, nullString(opt.ParseErrors),
	)
	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Task{}, nil // a malformed id cannot match a uuid column
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t JOIN lists l ON l.id = t.list_id WHERE t.id = $1 LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks (newest first) and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	where, args := r.buildWhere(opt)
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks t %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks t JOIN lists l ON l.id = t.list_id %s`, taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask writes every mutable column of a Task and returns the updated row.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `
		WITH t AS (
			UPDATE tasks
			SET title = $1, notes = $2, list_id = $3, priority = $4, due_date = $5,
			    completed = $6, completed_at = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM t JOIN lists l ON l.id = t.list_id`

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, nullString(opt.Notes), opt.ListID, nullPriority(opt.Priority), nullTime(opt.DueDate),
		opt.Completed, nullTime(opt.CompletedAt), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
