package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	repo "github.com/minakianandclaude/LifeTracker/internal/list/repository"
	"github.com/minakianandclaude/LifeTracker/internal/model"
)

const listColumns = `id, name, is_system, is_deletable, position, created_at, updated_at`

// GetOneList retrieves a single List by the provided filters (AND condition).
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.List, error) {
	if opt.ID != "" {
		if _, err := uuid.Parse(opt.ID); err != nil {
			return model.List{}, nil
		}
	}

	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM lists WHERE %s LIMIT 1", listColumns, where)

	var l model.List
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&l.ID, &l.Name, &l.IsSystem, &l.IsDeletable, &l.Position, &l.CreatedAt, &l.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.List{}, repo.ErrFailedToGet
	}
	return l, nil
}

// ListLists returns every list ordered by position together with its task count.
func (r *implRepository) ListLists(ctx context.Context) ([]model.List, error) {
	const query = `
		SELECT l.id, l.name, l.is_system, l.is_deletable, l.position, l.created_at, l.updated_at,
		       COUNT(t.id) AS task_count
		FROM lists l
		LEFT JOIN tasks t ON t.list_id = l.id
		GROUP BY l.id
		ORDER BY l.position ASC, l.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.Name, &l.IsSystem, &l.IsDeletable, &l.Position, &l.CreatedAt, &l.UpdatedAt, &l.TaskCount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLists"), err)
			return nil, repo.ErrFailedToList
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	return lists, nil
}

// buildGetOneQuery builds WHERE clause + args for GetOneList.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, list.NormalizeName(opt.Name))
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
