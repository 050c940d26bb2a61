package router

import (
	"dpmarketpro/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupCatalogRouter(e)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e)
	SetupPreferenceRouter(e)
	SetupHealthRouter(e)
}
