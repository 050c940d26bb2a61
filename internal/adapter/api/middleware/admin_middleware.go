package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly gates console routes. A missing session answers 401 so the
// client can bounce to the login screen; a non-admin session answers 403
// so it bounces home instead.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := SessionFromContext(c)
		if !session.Authenticated {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !session.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
