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

// TeamHandler handles the teams page.
type TeamHandler struct {
	teams    service.TeamService
	sessions session.Manager
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teams service.TeamService, sessions session.Manager) *TeamHandler {
	return &TeamHandler{teams: teams, sessions: sessions}
}

// TeamPage is the teams listing view.
type TeamPage struct {
	Page
	Teams []model.Team `json:"teams"`
}

// TeamForm is the action-discriminated teams page submission.
type TeamForm struct {
	Action      string `form:"action" validate:"required"`
	ID          uint   `form:"id"`
	Name        string `form:"name"`
	BaseCountry string `form:"base_country"`
	Principal   string `form:"principal"`
}

// List godoc
// @Summary Teams page
// @Tags teams
// @Produce json
// @Success 200 {object} TeamPage
// @Router /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	page := TeamPage{Page: newPage(c, h.sessions), Teams: []model.Team{}}

	teams, err := h.teams.ListTeams(c.Request().Context())
	var unavailable *apperrors.StoreUnavailableError
	switch {
	case err == nil:
		page.Teams = teams
	case errors.As(err, &unavailable):
		page.Errors = append(page.Errors, unavailable.Error())
	default:
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Submit godoc
// @Summary Create or delete a team
// @Tags teams
// @Accept x-www-form-urlencoded
// @Produce json
// @Param action formData string true "create_team or delete_team"
// @Success 303 {string} string "redirect to /teams"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /teams [post]
func (h *TeamHandler) Submit(c echo.Context) error {
	var form TeamForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	switch form.Action {
	case "create_team":
		if _, err := h.teams.CreateTeam(ctx, strings.TrimSpace(form.Name), optional(form.BaseCountry), optional(form.Principal)); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "success", "Team created.", "/teams")
	case "delete_team":
		if err := h.teams.DeleteTeam(ctx, form.ID); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "info", "Team deleted.", "/teams")
	default:
		return respondError(c, apperrors.NewValidation("Unknown action."))
	}
}
