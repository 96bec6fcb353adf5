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

// StatsHandler handles the stats page.
type StatsHandler struct {
	stats    service.StatsService
	sessions session.Manager
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats service.StatsService, sessions session.Manager) *StatsHandler {
	return &StatsHandler{stats: stats, sessions: sessions}
}

// StatsPage is the standings view for both drivers and cars.
type StatsPage struct {
	Page
	DriverStandings []model.DriverStanding `json:"driver_standings"`
	CarStandings    []model.CarStanding    `json:"car_standings"`
}

// StatsForm is the action-discriminated stats page submission. Driver and
// car updates share the common counters; podiums/championships apply to
// drivers and fastest_laps to cars.
type StatsForm struct {
	Action        string `form:"action" validate:"required"`
	DriverID      uint   `form:"driver_id"`
	CarID         uint   `form:"car_id"`
	Races         int    `form:"races"`
	Wins          int    `form:"wins"`
	Podiums       int    `form:"podiums"`
	Poles         int    `form:"poles"`
	FastestLaps   int    `form:"fastest_laps"`
	Points        int    `form:"points"`
	Championships int    `form:"championships"`
}

// List godoc
// @Summary Stats page
// @Tags stats
// @Produce json
// @Success 200 {object} StatsPage
// @Router /stats [get]
func (h *StatsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	page := StatsPage{
		Page:            newPage(c, h.sessions),
		DriverStandings: []model.DriverStanding{},
		CarStandings:    []model.CarStanding{},
	}

	var unavailable *apperrors.StoreUnavailableError

	drivers, err := h.stats.DriverStandings(ctx)
	switch {
	case err == nil:
		page.DriverStandings = drivers
	case errors.As(err, &unavailable):
		page.Errors = append(page.Errors, unavailable.Error())
	default:
		return respondError(c, err)
	}

	cars, err := h.stats.CarStandings(ctx)
	switch {
	case err == nil:
		page.CarStandings = cars
	case errors.As(err, &unavailable):
		// Same root cause as the driver listing; keep one message.
	default:
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// Submit godoc
// @Summary Update driver or car statistics
// @Tags stats
// @Accept x-www-form-urlencoded
// @Produce json
// @Param action formData string true "update_driver_stats or update_car_stats"
// @Success 303 {string} string "redirect to /stats"
// @Failure 400 {object} errors.ErrorResponse
// @Router /stats [post]
func (h *StatsHandler) Submit(c echo.Context) error {
	var form StatsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	switch form.Action {
	case "update_driver_stats":
		input := service.DriverStatsInput{
			Races:         form.Races,
			Wins:          form.Wins,
			Podiums:       form.Podiums,
			Poles:         form.Poles,
			Points:        form.Points,
			Championships: form.Championships,
		}
		if err := h.stats.UpsertDriverStats(ctx, form.DriverID, input); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "success", "Driver stats updated.", "/stats")
	case "update_car_stats":
		input := service.CarStatsInput{
			Races:       form.Races,
			Wins:        form.Wins,
			Poles:       form.Poles,
			FastestLaps: form.FastestLaps,
			Points:      form.Points,
		}
		if err := h.stats.UpsertCarStats(ctx, form.CarID, input); err != nil {
			return respondError(c, err)
		}
		return flashAndRedirect(c, h.sessions, "success", "Car stats updated.", "/stats")
	default:
		return respondError(c, apperrors.NewValidation("Unknown action."))
	}
}
