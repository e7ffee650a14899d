package session

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "propal/internal/errors"
	"propal/internal/model"
)

// ContextKey is where the decoded session user is stored on echo.Context.
const ContextKey = "session"

// Middleware loads the session cookie into the request context. Requests
// without a decodable cookie are rejected with 401.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + m.Name,
		ContextKey:  ContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return m.Codec.Decode(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "not signed in",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// CurrentUser returns the session user loaded by Middleware.
func CurrentUser(c echo.Context) (*model.SafeUser, bool) {
	user, ok := c.Get(ContextKey).(*model.SafeUser)
	return user, ok && user != nil
}

// RequireAdmin lets through only sessions whose role is admin. It must run
// after Middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "not signed in",
				Code:  "UNAUTHORIZED",
			})
		}
		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "admin role required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
