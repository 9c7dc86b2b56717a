package usecase

import (
	"context"
	"errors"
	"time"

	listRepo "github.com/minakianandclaude/LifeTracker/internal/list/repository"
	"github.com/minakianandclaude/LifeTracker/internal/model"
	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

const (
	inboxID   = "00000000-0000-0000-0000-000000000001"
	groceryID = "5b0f5f8e-8d5c-4a1d-9f7a-2d4c6b1e3a10"
	taskID    = "9c4e2a31-7f0b-4c55-8e8b-0e6d1f2a3b4c"
)

var errDB = errors.New("db error")

// mockTaskRepo keeps a single task in memory and records the last write.
type mockTaskRepo struct {
	task       model.Task
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	lastCreate repo.CreateTaskOptions
	lastUpdate repo.UpdateTaskOptions
	deleted    string
	listed     repo.ListTasksOptions
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.lastCreate = opt
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	return model.Task{
		ID:           taskID,
		Title:        opt.Title,
		ListID:       opt.ListID,
		List:         model.List{ID: opt.ListID, Name: "inbox"},
		RawInput:     opt.RawInput,
		ParseWarning: opt.ParseWarning,
		ParseErrors:  opt.ParseErrors,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.getErr != nil {
		return model.Task{}, m.getErr
	}
	if m.task.ID != opt.ID {
		return model.Task{}, nil
	}
	return m.task, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	m.listed = opt
	if m.getErr != nil {
		return nil, 0, m.getErr
	}
	return []model.Task{m.task}, 1, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.lastUpdate = opt
	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	return model.Task{
		ID:          opt.ID,
		Title:       opt.Title,
		Notes:       opt.Notes,
		ListID:      opt.ListID,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Completed:   opt.Completed,
		CompletedAt: opt.CompletedAt,
	}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	m.deleted = id
	return m.deleteErr
}

type mockListRepo struct {
	lists []model.List
	err   error
}

func (m *mockListRepo) GetOneList(ctx context.Context, opt listRepo.GetOneListOptions) (model.List, error) {
	if m.err != nil {
		return model.List{}, m.err
	}
	for _, l := range m.lists {
		if (opt.ID != "" && l.ID == opt.ID) || (opt.Name != "" && l.Name == opt.Name) {
			return l, nil
		}
	}
	return model.List{}, nil
}

func (m *mockListRepo) ListLists(ctx context.Context) ([]model.List, error) {
	return m.lists, m.err
}

func defaultLists() *mockListRepo {
	return &mockListRepo{lists: []model.List{
		{ID: inboxID, Name: model.InboxListName, IsSystem: true},
		{ID: groceryID, Name: "groceries", Position: 1},
	}}
}

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestUseCase(tasks *mockTaskRepo, lists *mockListRepo) *implUseCase {
	uc := New(log.NewNop(), tasks, lists).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
