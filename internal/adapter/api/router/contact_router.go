package router

import (
	"dpmarketpro/internal/adapter/api/handler"
	"dpmarketpro/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupContactRouter(e *echo.Echo) {
	contactHandler := handler.GetContactHandler()

	e.POST("/v1/contact", contactHandler.Submit, middleware.ContactRateLimit())
}
