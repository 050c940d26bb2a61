package handler

import (
	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/domain/entity"
	"dpmarketpro/internal/usecase"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/response"
)

// AdminProductHandler serves the console's listing table and the
// create/replace/toggle/delete calls.
type AdminProductHandler struct {
	editorUseCase *usecase.EditorUseCase
}

func NewAdminProductHandler(editorUseCase *usecase.EditorUseCase) *AdminProductHandler {
	return &AdminProductHandler{
		editorUseCase: editorUseCase,
	}
}

type productRequest struct {
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images" validate:"max=5,dive,url"`
	Features    []string `json:"features"`
	PaymentLink string   `json:"payment_link" validate:"omitempty,url"`
	IsActive    *bool    `json:"is_active"`
}

func (r *productRequest) toDraft(id string) (*entity.Draft, error) {
	category := entity.Category(r.Category)
	if !category.Valid() {
		return nil, errors.BadRequest("Unknown category", nil)
	}

	return &entity.Draft{
		ID:          id,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		Price:       r.Price,
		Category:    category,
		ImageURL:    r.ImageURL,
		Images:      r.Images,
		Features:    r.Features,
		PaymentLink: r.PaymentLink,
		IsActive:    r.IsActive,
	}, nil
}

func (h *AdminProductHandler) ListProducts(c echo.Context) error {
	products, err := h.editorUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"items": products,
		"total": len(products),
	})
}

func (h *AdminProductHandler) GetProduct(c echo.Context) error {
	product, err := h.editorUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	draft, err := req.toDraft("")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.editorUseCase.Submit(c.Request().Context(), draft)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

// ReplaceProduct writes the whole record. Whoever saves last wins; the
// console has no field-level merge.
func (h *AdminProductHandler) ReplaceProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	draft, err := req.toDraft(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.editorUseCase.Submit(c.Request().Context(), draft)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *AdminProductHandler) ToggleActive(c echo.Context) error {
	product, err := h.editorUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.editorUseCase.ToggleActive(c.Request().Context(), product); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":        product.ID,
		"is_active": !product.IsActive,
	})
}

func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"

	if err := h.editorUseCase.Delete(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}
