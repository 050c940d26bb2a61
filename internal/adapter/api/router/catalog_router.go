package router

import (
	"dpmarketpro/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	products := e.Group("/v1/products")
	products.GET("", catalogHandler.ListProducts)
	products.GET("/category/:category", catalogHandler.ListByCategory)
	products.GET("/:id", catalogHandler.GetProduct)
}
