package http

import (
	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

type Handler interface {
	Intake(c *gin.Context)
	Health(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for voice intake.
func New(l log.Logger, uc voice.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps POST /voice and GET /voice/health under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/voice", h.Intake)
	rg.GET("/voice/health", h.Health)
}
