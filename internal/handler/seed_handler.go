package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"propal/internal/model"
	"propal/internal/service"
)

// SeedHandler handles bulk user imports.
type SeedHandler struct {
	userService service.UserService
	log         *slog.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(userService service.UserService, log *slog.Logger) *SeedHandler {
	return &SeedHandler{userService: userService, log: log}
}

// SeedUsersResponse represents the seed response.
type SeedUsersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Skipped int    `json:"skipped"`
}

// SeedUsers godoc
// @Summary Import users
// @Description Appends every posted user whose email is not stored yet. Entries missing an email or password, or with a role other than admin or user, are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Param users body []model.User true "Users to import"
// @Success 200 {object} SeedUsersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	var users []model.User
	if err := c.Bind(&users); err != nil {
		return badRequest("invalid request body")
	}

	imported, skipped, err := h.userService.ImportUsers(c.Request().Context(), users)
	if err != nil {
		return domainError(c, h.log, "seed users", err)
	}

	h.log.InfoContext(c.Request().Context(), "users seeded", "imported", imported, "skipped", skipped)
	return c.JSON(http.StatusOK, SeedUsersResponse{
		Message: "users seeded successfully",
		Count:   imported,
		Skipped: skipped,
	})
}
