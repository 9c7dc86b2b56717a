package usecase

import (
	"github.com/minakianandclaude/LifeTracker/internal/task"
	"github.com/minakianandclaude/LifeTracker/internal/voice"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	parser voice.Parser
	taskUC task.UseCase
}

// New creates a new voice UseCase.
func New(l log.Logger, parser voice.Parser, taskUC task.UseCase) voice.UseCase {
	return &implUseCase{
		l:      l,
		parser: parser,
		taskUC: taskUC,
	}
}
