package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"apexgrid/internal/service"
	"apexgrid/internal/session"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	auth       service.AuthService
	sessions   session.Manager
	sessionTTL time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth service.AuthService, sessions session.Manager, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, sessionTTL: sessionTTL}
}

// LoginForm is the login page submission.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// RegisterForm is the registration page submission.
type RegisterForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
}

// LoginPage godoc
// @Summary Login page
// @Tags auth
// @Produce json
// @Success 200 {object} Page
// @Router /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if session.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.JSON(http.StatusOK, newPage(c, h.sessions))
}

// Login godoc
// @Summary Authenticate and start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 {string} string "redirect to /dashboard"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if session.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		return respondError(c, err)
	}
	return h.startSession(c, user.ID, "Welcome back, "+user.Name+"!")
}

// RegisterPage godoc
// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} Page
// @Router /register [get]
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if session.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.JSON(http.StatusOK, newPage(c, h.sessions))
}

// Register godoc
// @Summary Create an account and start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param password_confirm formData string true "Password confirmation"
// @Success 303 {string} string "redirect to /dashboard"
// @Failure 400 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	if session.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.auth.Register(c.Request().Context(), form.Name, form.Email, form.Password, form.PasswordConfirm)
	if err != nil {
		return respondError(c, err)
	}
	return h.startSession(c, user.ID, "Account created. Welcome!")
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Success 303 {string} string "redirect to /login"
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if token := session.Token(c); token != "" {
		_ = h.sessions.Destroy(ctx, token)
	}

	// Fresh anonymous session so the goodbye flash survives the redirect.
	guest, err := h.sessions.Start(ctx, 0)
	if err != nil {
		session.ClearCookie(c)
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	session.SetCookie(c, guest, h.sessionTTL)
	_ = h.sessions.SetFlash(ctx, guest, session.Flash{Type: "info", Message: "You have been logged out."})
	return c.Redirect(http.StatusSeeOther, "/login")
}

// startSession issues a brand new token for the user. The previous token
// (anonymous or not) is destroyed first so a successful login always
// regenerates the session id.
func (h *AuthHandler) startSession(c echo.Context, userID uint, welcome string) error {
	ctx := c.Request().Context()
	if old := session.Token(c); old != "" {
		_ = h.sessions.Destroy(ctx, old)
	}

	token, err := h.sessions.Start(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	session.SetCookie(c, token, h.sessionTTL)
	_ = h.sessions.SetFlash(ctx, token, session.Flash{Type: "success", Message: welcome})
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}
