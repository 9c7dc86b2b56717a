package http

import (
	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc list.UseCase
}

// New creates a new HTTP handler for the list domain.
func New(l log.Logger, uc list.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps the list endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	lists := rg.Group("/lists")
	{
		lists.GET("", h.List)
		lists.GET("/:id", h.Detail)
	}
}
