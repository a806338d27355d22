package helperAuth

import (
	"mantenimiento_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleAdmin    = constants.RoleAdmin
	RoleEmployee = constants.RoleEmployee
)

const (
	SourceSession = "session"
	SourceBearer  = "bearer"
)

// LocAuth is the locals key holding the request's *AuthContext.
const LocAuth = "auth_ctx"

// AuthContext is resolved once per request by the auth middleware and is
// the only identity source handlers consult.
type AuthContext struct {
	LoggedIn bool
	UserID   uint
	Username string
	Role     string
	Source   string
	Token    string // raw bearer token when Source == SourceBearer
}

func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.LoggedIn && a.Role == RoleAdmin
}

func (a *AuthContext) HasRole(roles ...string) bool {
	if a == nil || !a.LoggedIn {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

var anonymous = &AuthContext{}

// FromCtx never returns nil; a request without a resolved identity is anonymous.
func FromCtx(c *fiber.Ctx) *AuthContext {
	if a, ok := c.Locals(LocAuth).(*AuthContext); ok && a != nil {
		return a
	}
	return anonymous
}

func Set(c *fiber.Ctx, a *AuthContext) {
	c.Locals(LocAuth, a)
}
