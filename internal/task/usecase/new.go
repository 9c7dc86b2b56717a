package usecase

import (
	"time"

	listRepo "github.com/minakianandclaude/LifeTracker/internal/list/repository"
	"github.com/minakianandclaude/LifeTracker/internal/task"
	"github.com/minakianandclaude/LifeTracker/internal/task/repository"
	pkgLog "github.com/minakianandclaude/LifeTracker/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	lists listRepo.Repository
	now   func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, lists listRepo.Repository) task.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		lists: lists,
		now:   time.Now,
	}
}
