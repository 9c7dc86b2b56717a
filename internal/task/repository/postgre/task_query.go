package postgre

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/minakianandclaude/LifeTracker/internal/model"
	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row selected with taskColumns.
func scanTask(s rowScanner) (model.Task, error) {
	var (
		t                                      model.Task
		notes, priority, rawInput, parseErrors sql.NullString
		dueDate, completedAt                   sql.NullTime
	)

	err := s.Scan(
		&t.ID, &t.Title, &notes, &t.ListID, &priority, &dueDate, &t.Completed, &completedAt,
		&rawInput, &t.ParseWarning, &parseErrors, &t.CreatedAt, &t.UpdatedAt,
		&t.List.ID, &t.List.Name, &t.List.IsSystem, &t.List.IsDeletable, &t.List.Position,
		&t.List.CreatedAt, &t.List.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Notes = stringPtr(notes)
	t.RawInput = stringPtr(rawInput)
	t.ParseErrors = stringPtr(parseErrors)
	if priority.Valid {
		p := model.Priority(priority.String)
		t.Priority = &p
	}
	t.DueDate = timePtr(dueDate)
	t.CompletedAt = timePtr(completedAt)
	return t, nil
}

// buildWhere builds the WHERE clause + args shared by count and page queries.
func (r *implRepository) buildWhere(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ListID != "" {
		conditions = append(conditions, fmt.Sprintf("t.list_id = $%d", idx))
		args = append(args, opt.ListID)
		idx++
	}
	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("t.completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	idx := len(args) + 1

	parts := []string{}
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, "ORDER BY t.created_at DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullPriority(p *model.Priority) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
