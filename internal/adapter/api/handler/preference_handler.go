package handler

import (
	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/pref"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/response"
)

type PreferenceHandler struct {
	store *pref.Store
}

func NewPreferenceHandler(store *pref.Store) *PreferenceHandler {
	return &PreferenceHandler{
		store: store,
	}
}

func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	return response.Success(c, map[string]string{
		"theme": h.store.Theme(),
	})
}

func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req struct {
		Theme string `json:"theme" validate:"required,oneof=dark light"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.store.SetTheme(req.Theme)

	return response.Success(c, map[string]string{
		"theme": h.store.Theme(),
	})
}

func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	return response.Success(c, map[string]string{
		"theme": h.store.Toggle(),
	})
}
