package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"apexgrid/internal/config"
	"apexgrid/internal/handler"
	"apexgrid/internal/repository"
	"apexgrid/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions session.Manager,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	teamHandler *handler.TeamHandler,
	carHandler *handler.CarHandler,
	driverHandler *handler.DriverHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Resolve the session cookie once per request.
	e.Use(session.LoadUser(sessions, users, cfg.SessionTTL))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	// Public routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	// Secured routes (require a logged-in session)
	secured := e.Group("", session.RequireLogin())

	secured.GET("/dashboard", dashboardHandler.Show)

	secured.GET("/teams", teamHandler.List)
	secured.POST("/teams", teamHandler.Submit)

	secured.GET("/cars", carHandler.List)
	secured.POST("/cars", carHandler.Submit)

	secured.GET("/drivers", driverHandler.List)
	secured.POST("/drivers", driverHandler.Submit)

	secured.GET("/stats", statsHandler.List)
	secured.POST("/stats", statsHandler.Submit)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
