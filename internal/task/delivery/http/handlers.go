package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns tasks newest first, optionally filtered by list and completion.
// @Tags        Tasks
// @Produce     json
// @Security    ApiKeyAuth
// @Param       list_id   query string false "Filter by list ID"
// @Param       completed query bool   false "Filter by completion"
// @Param       limit     query int    false "Page size (0 = all, max 500)"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task
// @Tags        Tasks
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Create godoc
// @Summary     Create task
// @Description Creates a task. Without list_id the task goes to the inbox.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Validation Error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskEnvelope(output.Task))
}

// Update godoc
// @Summary     Update task
// @Description Partial update. notes, priority and due_date can be cleared with null.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Validation Error"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Delete godoc
// @Summary     Delete task
// @Tags        Tasks
// @Security    ApiKeyAuth
// @Param       id path string true "Task ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleComplete godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id}/complete [POST]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleComplete(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}
