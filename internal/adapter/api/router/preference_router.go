package router

import (
	"dpmarketpro/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupPreferenceRouter(e *echo.Echo) {
	preferenceHandler := handler.GetPreferenceHandler()

	theme := e.Group("/v1/preferences/theme")
	theme.GET("", preferenceHandler.GetTheme)
	theme.PUT("", preferenceHandler.SetTheme)
	theme.POST("/toggle", preferenceHandler.ToggleTheme)
}
