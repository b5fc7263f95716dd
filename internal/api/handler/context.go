package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/auth-service/internal/api/middleware"
	"github.com/estatehub/auth-service/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. A nil user
// here means the route was wired without the gate — reject rather than serve
// an unauthenticated request.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
