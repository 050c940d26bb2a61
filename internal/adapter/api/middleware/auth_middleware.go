package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/usecase"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate resolves the bearer token into a session exactly once and
// stores the result on the request context. Any resolution failure leaves
// the caller unauthenticated; there is no partially trusted state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		session := m.authUseCase.ResolveSession(c.Request().Context(), parts[1])
		if !session.Authenticated {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("session", session)
		c.Set("uid", session.UID)

		return next(c)
	}
}

// SessionFromContext returns the resolved session, or an unauthenticated
// one when Authenticate did not run on this route.
func SessionFromContext(c echo.Context) entity.Session {
	if session, ok := c.Get("session").(entity.Session); ok {
		return session
	}
	return entity.Unauthenticated()
}
