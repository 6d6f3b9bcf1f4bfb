package models

// Authentication is both the login request and its answer. The password is
// always null in the answer.
type Authentication struct {
	Login         string  `json:"login" example:"jperez"`
	Password      *string `json:"hash_password"`
	Authenticated bool    `json:"autenticado"`
	UserID        *int64  `json:"id_usuario,omitempty"`
	Token         *string `json:"token,omitempty"`
	ExpiresIn     *int    `json:"expires_in,omitempty"`
}

// PasswordChange is both the password change request and its answer. Both
// password fields are always null in the answer.
type PasswordChange struct {
	UserID          int64   `json:"id_usuario" example:"4"`
	NewPassword     *string `json:"nueva_password"`
	ConfirmPassword *string `json:"confirmacion_nueva_password"`
	Changed         bool    `json:"modificada"`
}
