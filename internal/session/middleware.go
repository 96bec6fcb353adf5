package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

const (
	userContextKey  = "session.user"
	tokenContextKey = "session.token"
)

// LoadUser resolves the session cookie once per request and stores the
// authenticated user (if any) and the session token in the echo context.
// A token pointing at a deleted user clears the session. Visitors without
// a cookie get an anonymous session so flashes survive redirects.
func LoadUser(manager Manager, users repository.UserRepository, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				token = cookie.Value
			}

			userID := uint(0)
			if token != "" {
				id, ok, err := manager.Resolve(ctx, token)
				if err != nil || !ok {
					token = ""
				} else {
					userID = id
				}
			}

			if token == "" {
				fresh, err := manager.Start(ctx, 0)
				if err == nil {
					token = fresh
					SetCookie(c, token, ttl)
				}
			}
			c.Set(tokenContextKey, token)

			if userID != 0 {
				user, err := users.FindByID(ctx, userID)
				switch {
				case err == nil:
					c.Set(userContextKey, user)
				case errors.Is(err, gorm.ErrRecordNotFound):
					// Session points at a user that no longer exists.
					_ = manager.Destroy(ctx, token)
					ClearCookie(c)
				}
			}

			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user for this request, nil if none.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// Token returns the session token for this request, "" if none.
func Token(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

// SetCookie attaches the session cookie to the response.
func SetCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
