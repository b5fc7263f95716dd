package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the role-gated demonstration endpoints: the caller's
// profile and the multi-role search entry point.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type profileResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile returns the authenticated caller's identity.
//
// @Summary      Current user profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Email: user.Email, Role: string(user.Role)})
}

// Search is the staff-only search entry point.
//
// @Summary      Property search
// @Tags         search
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/search [post]
func (h *ProfileHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "search allowed",
		"user_role": string(user.Role),
	})
}
