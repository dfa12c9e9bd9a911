package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"userhub/internal/service"
)

// UserHandler bundles the user CRUD handlers.
type UserHandler struct {
	svc    service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// AddUserRequest represents a user creation request.
type AddUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a partial user update. At least one field must
// be present.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=[]model.User}
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, Success("Users retrieved", users))
}

// AddUser godoc
// @Summary Add user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body AddUserRequest true "User payload"
// @Success 201 {object} Envelope{data=model.User}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /users [post]
func (h *UserHandler) AddUser(c echo.Context) error {
	var req AddUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failure("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failure("All fields are required"))
	}

	user, err := h.svc.CreateUser(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, Success("User added successfully", user))
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} Envelope{data=model.User}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Failure("invalid request body"))
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), c.Param("id"), service.UserUpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, Success("User updated successfully", user))
}
