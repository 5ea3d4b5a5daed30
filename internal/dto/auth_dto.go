package dto

import "time"

// CredentialsForm carries the username and password fields of the login and
// register forms.
type CredentialsForm struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// SessionResponse describes an established session.
type SessionResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
