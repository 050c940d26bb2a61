package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"dpmarketpro/internal/usecase"
	"dpmarketpro/pkg/errors"
	"dpmarketpro/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile profileResponse `json:"profile"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token: result.Token,
		Profile: profileResponse{
			ID:    result.Profile.ID,
			Email: result.Profile.Email,
			Role:  string(result.Profile.Role),
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		Profile: profileResponse{
			ID:    result.Profile.ID,
			Email: result.Profile.Email,
			Role:  string(result.Profile.Role),
		},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}

// Session reports the caller's resolved state. Unlike the guarded routes
// this never fails: a missing or bad token simply answers unauthenticated,
// which is what a storefront header needs to render the right buttons.
func (h *AuthHandler) Session(c echo.Context) error {
	var idToken string
	authHeader := c.Request().Header.Get("Authorization")
	if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
		idToken = parts[1]
	}

	session := h.authUseCase.ResolveSession(c.Request().Context(), idToken)

	return response.Success(c, map[string]interface{}{
		"authenticated": session.Authenticated,
		"uid":           session.UID,
		"role":          string(session.Role),
	})
}
