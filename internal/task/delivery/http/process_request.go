package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "github.com/minakianandclaude/LifeTracker/pkg/errors"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(pkgErrors.ValidationMessage, []string{err.Error()})
	}
	return req, nil
}

// processUpdateReq binds and validates the update body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewValidationError(pkgErrors.ValidationMessage, []string{err.Error()})
	}
	req.ID = c.Param("id")
	return req, nil
}
