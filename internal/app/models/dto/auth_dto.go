package dto

import "github.com/tallerdev/admtaller/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Login    string `json:"login" binding:"required,max=60" example:"jperez"`
	Password string `json:"hash_password" binding:"required" example:"secreto"`
}

// ToModel converts the request to the authentication model
func (r *LoginRequest) ToModel() *models.Authentication {
	password := r.Password
	return &models.Authentication{Login: r.Login, Password: &password}
}

// PasswordChangeRequest replaces the password of a user
type PasswordChangeRequest struct {
	UserID          int64  `json:"id_usuario" binding:"required,gt=0" example:"4"`
	NewPassword     string `json:"nueva_password" binding:"required,max=72"`
	ConfirmPassword string `json:"confirmacion_nueva_password" binding:"required"`
}

// ToModel converts the request to the password change model
func (r *PasswordChangeRequest) ToModel() *models.PasswordChange {
	newPassword, confirm := r.NewPassword, r.ConfirmPassword
	return &models.PasswordChange{
		UserID:          r.UserID,
		NewPassword:     &newPassword,
		ConfirmPassword: &confirm,
	}
}
