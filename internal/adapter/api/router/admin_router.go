package router

import (
	"dpmarketpro/internal/adapter/api/handler"
	"dpmarketpro/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminProductHandler := handler.GetAdminProductHandler()
	draftImageHandler := handler.GetDraftImageHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/products", adminProductHandler.ListProducts)
	admin.GET("/products/:id", adminProductHandler.GetProduct)
	admin.POST("/products", adminProductHandler.CreateProduct)
	admin.PUT("/products/:id", adminProductHandler.ReplaceProduct)
	admin.PATCH("/products/:id/active", adminProductHandler.ToggleActive)
	admin.DELETE("/products/:id", adminProductHandler.DeleteProduct)

	admin.POST("/drafts/images", draftImageHandler.AttachImages)
	admin.POST("/drafts/images/remove", draftImageHandler.RemoveImage)
}
