package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// RBAC enforces role-based access control over the primary role and any
// secondary role assignments injected by Auth. Roles are normalized
// fail-closed, so a malformed claim degrades to the employee role instead
// of slipping past the check.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			secondary, _ := c.Get("roles").([]string)

			principal := &domain.User{Role: domain.NormalizeRole(role)}
			for _, r := range secondary {
				principal.Roles = append(principal.Roles, domain.NormalizeRole(r))
			}

			if !domain.HasAnyRole(principal, allowedRoles...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
