package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "userhub/internal/errors"
	"userhub/internal/service"
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

// LoginOrRegisterRequest represents the merged login/register request body.
type LoginOrRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// TokenData carries the issued bearer token.
type TokenData struct {
	Token string `json:"token"`
}

// LoginOrRegister godoc
// @Summary Log in, registering the user first if the email is unseen
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginOrRegisterRequest true "Credentials"
// @Success 200 {object} Envelope "Login successful"
// @Success 201 {object} Envelope "User registered and logged in"
// @Failure 500 {object} Envelope
// @Router /auth/loginOrRegister [post]
func (h *AuthHandler) LoginOrRegister(c echo.Context) error {
	var req LoginOrRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failure("invalid request body"))
	}

	res, err := h.authService.LoginOrRegister(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if res.Registered {
		return c.JSON(http.StatusCreated,
			Success("User registered and logged in successfully", TokenData{Token: res.Token}))
	}
	return c.JSON(http.StatusOK, Success("Login successful", TokenData{Token: res.Token}))
}

// respondError converts a service error to the response envelope. Causes that
// are hidden from the client end up in the server log instead.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(httpErr.StatusCode, Failure(httpErr.Message))
}
