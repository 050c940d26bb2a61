package router

import (
	"dpmarketpro/internal/adapter/api/handler"
	"dpmarketpro/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()
	sessionEventHandler := handler.GetSessionEventHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register, middleware.AuthRateLimit())
	auth.POST("/login", authHandler.Login, middleware.AuthRateLimit())
	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
	auth.GET("/session", authHandler.Session)

	e.GET("/v1/session/events", sessionEventHandler.HandleEvents)
}
