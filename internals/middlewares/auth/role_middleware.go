package auth

import (
	"log"

	helper "mantenimiento_backend/internals/helpers"
	helperAuth "mantenimiento_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
)

// RoleMiddlewareWithCustomError lets the request through when the caller
// holds one of allowedRoles. Anonymous callers are sent to the login page
// (401 for API callers); authenticated callers with another role get 403 and
// are never redirected.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a := helperAuth.FromCtx(c)
		if !a.LoggedIn {
			return redirectToLogin(c)
		}
		if a.HasRole(allowedRoles...) {
			return c.Next()
		}

		log.Printf("[AUTH] ⛔ %s (role=%s) denied %s %s", a.Username, a.Role, c.Method(), c.Path())
		if customForbiddenMessage == "" {
			customForbiddenMessage = "access denied: insufficient permissions"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// Shortcut
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
