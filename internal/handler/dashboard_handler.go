package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/service"
	"apexgrid/internal/session"
)

// DashboardHandler handles the overview page.
type DashboardHandler struct {
	dashboard service.DashboardService
	sessions  session.Manager
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService, sessions session.Manager) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, sessions: sessions}
}

// DashboardPage is the overview view.
type DashboardPage struct {
	Page
	Overview *model.Overview `json:"overview"`
}

// Show godoc
// @Summary Dashboard page
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardPage
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	page := DashboardPage{Page: newPage(c, h.sessions)}

	overview, err := h.dashboard.Overview(c.Request().Context())
	page.Overview = overview

	var unavailable *apperrors.StoreUnavailableError
	if errors.As(err, &unavailable) {
		page.Errors = append(page.Errors, unavailable.Error())
	} else if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
