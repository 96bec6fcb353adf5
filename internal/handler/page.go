package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/session"
)

// Page is the envelope shared by every rendered view: the authenticated
// user, the popped one-shot flash, and any degraded-listing messages.
type Page struct {
	User   *model.User    `json:"user,omitempty"`
	Flash  *session.Flash `json:"flash,omitempty"`
	Errors []string       `json:"errors,omitempty"`
}

// newPage populates the envelope for the current request, consuming the
// pending flash.
func newPage(c echo.Context, sessions session.Manager) Page {
	page := Page{User: session.CurrentUser(c)}
	if token := session.Token(c); token != "" {
		flash, _ := sessions.PopFlash(c.Request().Context(), token)
		page.Flash = flash
	}
	return page
}

// respondError maps a domain error to its HTTP shape.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// flashAndRedirect stores a one-shot message and sends the browser back
// to the originating page.
func flashAndRedirect(c echo.Context, sessions session.Manager, flashType, message, target string) error {
	if token := session.Token(c); token != "" {
		_ = sessions.SetFlash(c.Request().Context(), token, session.Flash{Type: flashType, Message: message})
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// optional trims a form value and returns nil when it is empty, so blank
// inputs persist as NULL.
func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
