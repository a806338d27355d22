package dto

import "strings"

// Credentials is the body of the login, register and token endpoints.
// Pages post it as a form, API clients as JSON.
type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role"     form:"role"`
	Next     string `json:"next"     form:"next"`
}

func (r *Credentials) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Next = strings.TrimSpace(r.Next)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     form:"new_password"     validate:"required"`
}

type MeResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Source   string `json:"source"`
}
