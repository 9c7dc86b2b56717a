package usecase

import (
	"context"
	"strings"

	"github.com/minakianandclaude/LifeTracker/internal/model"
	"github.com/minakianandclaude/LifeTracker/internal/task"
	repo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.getExisting(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update to an existing Task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.getExisting(ctx, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	opt := toUpdateOptions(existing)

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return task.UpdateTaskOutput{}, task.ErrEmptyTitle
		}
		opt.Title = title
	}
	if input.Notes.Set {
		opt.Notes = input.Notes.Value
	}
	if input.ListID != nil && *input.ListID != existing.ListID {
		listID, err := uc.resolveListID(ctx, *input.ListID)
		if err != nil {
			return task.UpdateTaskOutput{}, err
		}
		opt.ListID = listID
	}
	if input.Priority.Set {
		opt.Priority = input.Priority.Value
	}
	if input.DueDate.Set {
		opt.DueDate = input.DueDate.Value
	}
	if input.Completed != nil {
		uc.setCompleted(&opt, *input.Completed)
	}

	return uc.write(ctx, "Update", opt)
}

// ToggleComplete flips the completion state of a Task.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) (task.UpdateTaskOutput, error) {
	existing, err := uc.getExisting(ctx, id)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	opt := toUpdateOptions(existing)
	uc.setCompleted(&opt, !existing.Completed)

	return uc.write(ctx, "ToggleComplete", opt)
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getExisting(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getExisting(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getExisting GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) write(ctx context.Context, method string, opt repo.UpdateTaskOptions) (task.UpdateTaskOutput, error) {
	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s UpdateTask: %v", method, err)
		return task.UpdateTaskOutput{}, err
	}
	if t.ID == "" {
		// deleted between read and write
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateTaskOutput{Task: t}, nil
}

// setCompleted keeps an existing CompletedAt when the task was already complete.
func (uc *implUseCase) setCompleted(opt *repo.UpdateTaskOptions, completed bool) {
	if !completed {
		opt.Completed = false
		opt.CompletedAt = nil
		return
	}
	if !opt.Completed || opt.CompletedAt == nil {
		now := uc.now()
		opt.CompletedAt = &now
	}
	opt.Completed = true
}

func toUpdateOptions(t model.Task) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:          t.ID,
		Title:       t.Title,
		Notes:       t.Notes,
		ListID:      t.ListID,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}
