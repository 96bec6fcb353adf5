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

// CarHandler handles the cars page.
type CarHandler struct {
	cars     service.CarService
	teams    service.TeamService
	sessions session.Manager
}

// NewCarHandler creates a new car handler.
func NewCarHandler(cars service.CarService, teams service.TeamService, sessions session.Manager) *CarHandler {
	return &CarHandler{cars: cars, teams: teams, sessions: sessions}
}

// CarPage is the car catalogue view. Teams are included for the add-car
// form's team selector.
type CarPage struct {
	Page
	Cars  []model.CatalogueCar `json:"cars"`
	Teams []model.Team         `json:"teams"`
}

// CarForm is the action-discriminated cars page submission.
type CarForm struct {
	Action       string `form:"action" validate:"required"`
	ID           uint   `form:"id"`
	TeamID       uint   `form:"team_id"`
	Model        string `form:"model"`
	Manufacturer string `form:"manufacturer"`
	SeasonYear   int    `form:"season_year"`
	Engine       string `form:"engine"`
	Horsepower   string `form:"horsepower"`
	ImageURL     string `form:"image_url"`
}

// List godoc
// @Summary Cars page
// @Tags cars
// @Produce json
// @Success 200 {object} CarPage
// @Router /cars [get]
func (h *CarHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	page := CarPage{Page: newPage(c, h.sessions), Cars: []model.CatalogueCar{}, Teams: []model.Team{}}

	cars, err := h.cars.ListCatalogue(ctx)
	var unavailable *apperrors.StoreUnavailableError
	switch {
	case err == nil:
		page.Cars = cars
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
// @Summary Create or delete a car
// @Tags cars
// @Accept x-www-form-urlencoded
// @Produce json
// @Param action formData string true "create_car or delete_car"
// @Success 303 {string} string "redirect to /cars"
// @Failure 400 {object} errors.ErrorResponse
// @Router /cars [post]
func (h *CarHandler) Submit(c echo.Context) error {
	var form CarForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	switch form.Action {
	case "create_car":
		input := service.CreateCarInput{
			TeamID:       form.TeamID,
			Model:        strings.TrimSpace(form.Model),
			Manufacturer: optional(form.Manufacturer),
			SeasonYear:   form.SeasonYear,
			Engine:       optional(form.Engine),
			Horsepower:   optional(form.Horsepower),
			ImageURL:     optional(form.ImageURL),
		}
		if _, err := h.cars.CreateCar(ctx, input); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "success", "Car added to catalogue.", "/cars")
	case "delete_car":
		if err := h.cars.DeleteCar(ctx, form.ID); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "info", "Car deleted.", "/cars")
	default:
		return respondError(c, apperrors.NewValidation("Unknown action."))
	}
}
