package usecase

import (
	"context"
	"strings"

	listRepo "github.com/minakianandclaude/LifeTracker/internal/list/repository"
	"github.com/minakianandclaude/LifeTracker/internal/model"
	"github.com/minakianandclaude/LifeTracker/internal/task"
	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

// Create stores a new task, defaulting to the inbox when no list is given.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	listID, err := uc.resolveListID(ctx, input.ListID)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:        title,
		Notes:        input.Notes,
		ListID:       listID,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		RawInput:     input.RawInput,
		ParseWarning: input.ParseWarning,
		ParseErrors:  input.ParseErrors,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.l.Infof(ctx, "task %s created in list %s", t.ID, t.List.Name)
	return task.CreateTaskOutput{Task: t}, nil
}

// resolveListID returns the inbox ID for an empty listID, otherwise checks the list exists.
func (uc *implUseCase) resolveListID(ctx context.Context, listID string) (string, error) {
	if listID == "" {
		inbox, err := uc.lists.GetOneList(ctx, listRepo.GetOneListOptions{Name: model.InboxListName})
		if err != nil {
			uc.l.Errorf(ctx, "uc.resolveListID GetOneList(inbox): %v", err)
			return "", err
		}
		if inbox.ID == "" {
			return "", task.ErrInboxNotFound
		}
		return inbox.ID, nil
	}

	l, err := uc.lists.GetOneList(ctx, listRepo.GetOneListOptions{ID: listID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveListID GetOneList: %v", err)
		return "", err
	}
	if l.ID == "" {
		return "", task.ErrListNotFound
	}
	return l.ID, nil
}
