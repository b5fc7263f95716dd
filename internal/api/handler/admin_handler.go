package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/auth-service/internal/core/domain"
	"github.com/estatehub/auth-service/internal/core/ports"
)

// AdminHandler hosts the admin-gated operations. Route-level RBAC guarantees
// only admins reach these methods.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

type updateRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin manager agent user"`
}

type updateRoleResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// UpdateRole changes an existing user's role.
//
// @Summary      Update a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateRoleRequest  true  "Target user and new role"
// @Success      200   {object}  updateRoleResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/update-role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	user, err := h.authService.UpdateRole(c.Request().Context(), req.Email, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateRoleResponse{Message: "role updated", User: user})
}

// Dashboard is the admin landing endpoint.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "admin access granted"})
}
