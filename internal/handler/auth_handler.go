package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/internal/errors"
	"brainvault/internal/middleware"
	"brainvault/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest represents a signin request.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignoutRequest represents a signout request.
type SignoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse carries issued tokens.
type TokenResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Credentials"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password); err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "user signed up successfully"})
}

// Signin godoc
// @Summary Sign in
// @Description Returns a bearer access token, and a refresh token when refresh tokens are enabled.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	accessToken, refreshToken, err := h.authService.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Success: true, Token: accessToken, RefreshToken: refreshToken})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /token/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Success: true, Token: accessToken})
}

// Signout godoc
// @Summary Sign out
// @Description Revokes the presented access token and the given refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SignoutRequest false "Refresh token to revoke"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return fail(c, h.logger, errors.ErrInvalidToken)
	}

	var req SignoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.Signout(c.Request().Context(), claims, req.RefreshToken); err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "signed out"})
}
