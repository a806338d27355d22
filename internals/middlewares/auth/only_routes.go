package auth

import (
	"net/url"
	"strings"

	helper "mantenimiento_backend/internals/helpers"
	helperAuth "mantenimiento_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
)

const LoginPath = "/login"

// RequireLogin admits any authenticated caller. Anonymous page requests are
// redirected to the login page with the requested URL as ?next=; API
// callers get 401.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.FromCtx(c).LoggedIn {
			return c.Next()
		}
		return redirectToLogin(c)
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	if IsAPICaller(c) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "login required")
	}
	return c.Redirect(LoginPath+"?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}

// SafeNext returns next when it is a local absolute path, otherwise "/".
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// IsAPICaller reports a request that expects JSON rather than a page: it
// carries a bearer token, is an XHR, sends JSON or prefers it in Accept.
func IsAPICaller(c *fiber.Ctx) bool {
	if c.Get(fiber.HeaderAuthorization) != "" {
		return true
	}
	if strings.EqualFold(c.Get(fiber.HeaderXRequestedWith), "XMLHttpRequest") {
		return true
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
