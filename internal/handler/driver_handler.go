package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/service"
	"apexgrid/internal/session"
)

// DriverHandler handles the drivers page.
type DriverHandler struct {
	drivers  service.DriverService
	teams    service.TeamService
	sessions session.Manager
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(drivers service.DriverService, teams service.TeamService, sessions session.Manager) *DriverHandler {
	return &DriverHandler{drivers: drivers, teams: teams, sessions: sessions}
}

// DriverPage is the driver roster view.
type DriverPage struct {
	Page
	Drivers []model.DriverEntry `json:"drivers"`
	Teams   []model.Team        `json:"teams"`
}

// DriverForm is the action-discriminated drivers page submission.
type DriverForm struct {
	Action       string `form:"action" validate:"required"`
	ID           uint   `form:"id"`
	TeamID       uint   `form:"team_id"`
	FirstName    string `form:"first_name"`
	LastName     string `form:"last_name"`
	Nationality  string `form:"nationality"`
	DateOfBirth  string `form:"date_of_birth"`
	DriverNumber string `form:"driver_number"`
}

// List godoc
// @Summary Drivers page
// @Tags drivers
// @Produce json
// @Success 200 {object} DriverPage
// @Router /drivers [get]
func (h *DriverHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	page := DriverPage{Page: newPage(c, h.sessions), Drivers: []model.DriverEntry{}, Teams: []model.Team{}}

	drivers, err := h.drivers.ListRoster(ctx)
	var unavailable *apperrors.StoreUnavailableError
	switch {
	case err == nil:
		page.Drivers = drivers
	case errors.As(err, &unavailable):
		page.Errors = append(page.Errors, unavailable.Error())
	default:
		return respondError(c, err)
	}

	if teams, err := h.teams.ListTeams(ctx); err == nil {
		page.Teams = teams
	}
	return c.JSON(http.StatusOK, page)
}

// Submit godoc
// @Summary Create or delete a driver
// @Tags drivers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param action formData string true "create_driver or delete_driver"
// @Success 303 {string} string "redirect to /drivers"
// @Failure 400 {object} errors.ErrorResponse
// @Router /drivers [post]
func (h *DriverHandler) Submit(c echo.Context) error {
	var form DriverForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	switch form.Action {
	case "create_driver":
		input := service.CreateDriverInput{
			TeamID:       form.TeamID,
			FirstName:    strings.TrimSpace(form.FirstName),
			LastName:     strings.TrimSpace(form.LastName),
			Nationality:  optional(form.Nationality),
			DateOfBirth:  optional(form.DateOfBirth),
			DriverNumber: optional(form.DriverNumber),
		}
		if _, err := h.drivers.CreateDriver(ctx, input); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "success", "Driver created.", "/drivers")
	case "delete_driver":
		if err := h.drivers.DeleteDriver(ctx, form.ID); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "info", "Driver deleted.", "/drivers")
	default:
		return respondError(c, apperrors.NewValidation("Unknown action."))
	}
}
