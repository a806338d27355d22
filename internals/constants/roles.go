package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
	ErrLoginRequired       = "❌ You must be logged in to access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func LoginError(feature string) string {
	return fmt.Sprintf(ErrLoginRequired, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEmployee,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r string) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}
