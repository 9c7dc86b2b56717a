package postgre

import (
	"strings"
	"testing"

	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	done := true

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "no filters",
			opt:      repo.ListTasksOptions{},
			wantSQL:  "ORDER BY t.created_at DESC",
			wantArgs: 0,
		},
		{
			name:     "list and page",
			opt:      repo.ListTasksOptions{ListID: "abc", Limit: 20, Offset: 40},
			wantSQL:  "WHERE t.list_id = $1 ORDER BY t.created_at DESC LIMIT $2 OFFSET $3",
			wantArgs: 3,
		},
		{
			name:     "completed filter",
			opt:      repo.ListTasksOptions{ListID: "abc", Completed: &done, Limit: 5},
			wantSQL:  "WHERE t.list_id = $1 AND t.completed = $2 ORDER BY t.created_at DESC LIMIT $3",
			wantArgs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := r.buildListQuery(tt.opt)
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildWhere_CountMatchesPage(t *testing.T) {
	r := &implRepository{}
	opt := repo.ListTasksOptions{ListID: "abc", Limit: 10}

	where, whereArgs := r.buildWhere(opt)
	page, pageArgs := r.buildListQuery(opt)

	if !strings.HasPrefix(page, where) {
		t.Errorf("page query %q should start with %q", page, where)
	}
	if len(pageArgs) != len(whereArgs)+1 {
		t.Errorf("expected one extra arg for LIMIT, got %d vs %d", len(pageArgs), len(whereArgs))
	}
}
