package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/task"
	"github.com/minakianandclaude/LifeTracker/internal/voice"
	pkgErrors "github.com/minakianandclaude/LifeTracker/pkg/errors"
	"github.com/minakianandclaude/LifeTracker/pkg/response"
)

const inputValidationMessage = "Input is required and must be between 1-1000 characters"

var (
	errInvalidInput  = pkgErrors.NewValidationError(pkgErrors.ValidationMessage, []string{inputValidationMessage})
	errInboxNotFound = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Inbox list not found")
)

func (h *handler) mapError(err error) error {
	switch err {
	case voice.ErrEmptyInput, voice.ErrInputTooLong, task.ErrEmptyTitle:
		return errInvalidInput
	case task.ErrInboxNotFound:
		return errInboxNotFound
	default:
		return err
	}
}

// Intake godoc
// @Summary     Add a task by voice
// @Description Parses a spoken sentence into a task title and files it in the inbox.
// @Description If the model is unavailable the task is still created with a heuristic title and parsing.warning=true.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body intakeReq true "Voice input"
// @Success     200 {object} intakeResp
// @Failure     400 {object} response.Resp "Validation Error"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/voice [POST]
func (h *handler) Intake(c *gin.Context) {
	ctx := c.Request.Context()

	var req intakeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidInput)
		return
	}

	output, err := h.uc.Intake(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "voice.http.Intake: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIntakeResp(output))
}

// Health godoc
// @Summary     Voice parser health
// @Description Reports whether the language model is available. Degraded still accepts input.
// @Tags        Voice
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} healthResp
// @Router      /api/voice/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, h.newHealthResp(h.uc.Health(c.Request.Context())))
}
