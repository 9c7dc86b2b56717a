package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	"github.com/minakianandclaude/LifeTracker/internal/model"
	taskHTTP "github.com/minakianandclaude/LifeTracker/internal/task/delivery/http"
	pkgErrors "github.com/minakianandclaude/LifeTracker/pkg/errors"
	"github.com/minakianandclaude/LifeTracker/pkg/response"
)

var errListNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "list not found")

func (h *handler) mapError(err error) error {
	if err == list.ErrListNotFound {
		return errListNotFound
	}
	return err
}

type listResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	IsSystem    bool      `json:"is_system"`
	IsDeletable bool      `json:"is_deletable"`
	Position    int       `json:"position"`
	TaskCount   int       `json:"task_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newListResp(l model.List) listResp {
	return listResp{
		ID:          l.ID,
		Name:        l.Name,
		DisplayName: list.DisplayName(l.Name),
		IsSystem:    l.IsSystem,
		IsDeletable: l.IsDeletable,
		Position:    l.Position,
		TaskCount:   l.TaskCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type listsResp struct {
	Lists []listResp `json:"lists"`
}

type detailResp struct {
	List  listResp            `json:"list"`
	Tasks []taskHTTP.TaskResp `json:"tasks"`
}

// List godoc
// @Summary     List lists
// @Description Returns every list ordered by position, with task counts.
// @Tags        Lists
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} listsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/lists [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	resp := listsResp{Lists: make([]listResp, len(output.Lists))}
	for i, l := range output.Lists {
		resp.Lists[i] = newListResp(l)
	}
	response.OK(c, resp)
}

// Detail godoc
// @Summary     Get list
// @Description Returns a list with its tasks, newest first.
// @Tags        Lists
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "List ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{
		List:  newListResp(output.List),
		Tasks: taskHTTP.NewTaskRespList(output.Tasks),
	})
}
