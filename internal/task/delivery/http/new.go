package http

import (
	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/task"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

// Handler is the HTTP delivery layer of the task domain.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ToggleComplete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
