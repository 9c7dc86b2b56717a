package usecase

import (
	"github.com/minakianandclaude/LifeTracker/internal/list"
	"github.com/minakianandclaude/LifeTracker/internal/list/repository"
	taskRepo "github.com/minakianandclaude/LifeTracker/internal/task/repository"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

// implUseCase is the private implementation of list.UseCase.
type implUseCase struct {
	repo  repository.Repository
	tasks taskRepo.Repository
	l     log.Logger
}

// New creates a new list UseCase implementation.
func New(repo repository.Repository, tasks taskRepo.Repository, l log.Logger) list.UseCase {
	return &implUseCase{
		repo:  repo,
		tasks: tasks,
		l:     l,
	}
}
