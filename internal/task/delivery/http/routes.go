package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the task endpoints under rg. Auth is applied by the caller's group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.ToggleComplete)
	}
}
