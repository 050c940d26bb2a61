package handler

import (
	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/usecase"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products := h.catalogUseCase.ListAll(c.Request().Context(), true)
	return response.Success(c, map[string]interface{}{
		"items": products,
		"total": len(products),
	})
}

func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	category := entity.Category(c.Param("category"))
	if !category.Valid() {
		return response.Error(c, errors.BadRequest("Unknown category", nil))
	}

	products := h.catalogUseCase.ListByCategory(c.Request().Context(), category)
	return response.Success(c, map[string]interface{}{
		"items": products,
		"total": len(products),
	})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
