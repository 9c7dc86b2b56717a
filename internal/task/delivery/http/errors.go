package http

import (
	"net/http"

	"github.com/minakianandclaude/LifeTracker/internal/task"
	pkgErrors "github.com/minakianandclaude/LifeTracker/pkg/errors"
)

var (
	errTaskNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errListNotFound  = pkgErrors.NewHTTPError(http.StatusBadRequest, "list not found")
	errEmptyTitle    = pkgErrors.NewValidationError(pkgErrors.ValidationMessage, []string{"title must not be blank"})
	errInboxNotFound = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Inbox list not found. Please run the database migration.")
)

// mapError translates task use-case errors into HTTP errors.
// Unknown errors are returned unchanged and rendered as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return errTaskNotFound
	case task.ErrListNotFound:
		return errListNotFound
	case task.ErrEmptyTitle:
		return errEmptyTitle
	case task.ErrInboxNotFound:
		return errInboxNotFound
	default:
		return err
	}
}
