package usecase

import (
	"context"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	repo "github.com/minakianandclaude/LifeTracker/internal/list/repository"
	taskRepo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
)

// List returns every list ordered by position, with task counts.
func (uc *implUseCase) List(ctx context.Context) (list.ListListsOutput, error) {
	lists, err := uc.repo.ListLists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLists: %v", err)
		return list.ListListsOutput{}, err
	}
	return list.ListListsOutput{Lists: lists}, nil
}

// Detail returns a list with all of its tasks, newest first.
func (uc *implUseCase) Detail(ctx context.Context, id string) (list.DetailListOutput, error) {
	l, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneList: %v", err)
		return list.DetailListOutput{}, err
	}
	if l.ID == "" {
		return list.DetailListOutput{}, list.ErrListNotFound
	}

	tasks, total, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{ListID: l.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListTasks: %v", err)
		return list.DetailListOutput{}, err
	}
	l.TaskCount = total

	return list.DetailListOutput{List: l, Tasks: tasks}, nil
}
