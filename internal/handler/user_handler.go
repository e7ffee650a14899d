package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"propal/internal/service"
)

// UserHandler bundles user listing and signup handlers.
type UserHandler struct {
	svc service.UserService
	log *slog.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// CreateUserRequest represents a signup request.
type CreateUserRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
}

// CreateUser godoc
// @Summary Sign up
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.SafeUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req,
		"Username, email, and password are required",
		map[string]string{
			"min":   "Password must be at least 6 characters long",
			"oneof": "Role must be either admin or user",
		},
	); err != nil {
		return err
	}

	created, err := h.svc.CreateUser(c.Request().Context(), service.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		return domainError(c, h.log, "create user", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List users
// @Description Every stored user without the password field.
// @Tags users
// @Produce json
// @Success 200 {array} model.SafeUser
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return domainError(c, h.log, "list users", err)
	}
	return c.JSON(http.StatusOK, users)
}

// AdminListUsers godoc
// @Summary List users (admin dashboard)
// @Tags admin
// @Produce json
// @Success 200 {array} model.SafeUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *UserHandler) AdminListUsers(c echo.Context) error {
	return h.ListUsers(c)
}
