package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// ctxPrincipal rebuilds the authenticated principal from the claims
// injected by the Auth middleware and performs a fast-fail check before
// any service call: user_id and role must be present (presence proves the
// middleware ran). Roles are normalized fail-closed on the way in.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	principal := &domain.User{
		ID:     userID,
		Role:   domain.NormalizeRole(role),
		Active: true,
	}
	if email, ok := c.Get("email").(string); ok {
		principal.Email = email
	}
	if employeeID, ok := c.Get("employee_id").(string); ok {
		principal.EmployeeID = employeeID
	}
	if secondary, ok := c.Get("roles").([]string); ok {
		for _, r := range secondary {
			principal.Roles = append(principal.Roles, domain.NormalizeRole(r))
		}
	}

	return principal, nil
}
