package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// MsgPasswordMismatch is returned when the confirmation differs.
const MsgPasswordMismatch = "La nueva contraseña y su confirmación no coinciden"

type credentialStore interface {
	GetCredentialsByLogin(ctx context.Context, login string) (*models.Credentials, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID int64, login string, role int32) (string, int, error)
}

// AuthService handles authentication operations
type AuthService struct {
	repo   credentialStore
	tokens tokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(repo credentialStore, tokens *auth.JWTService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login checks a login and password. Wrong credentials are not an error:
// the answer carries autenticado=false. The password is never echoed.
func (s *AuthService) Login(ctx context.Context, req *models.Authentication) (*models.Authentication, error) {
	login := strings.TrimSpace(req.Login)
	res := &models.Authentication{Login: login}

	password := ""
	if req.Password != nil {
		password = *req.Password
	}

	creds, err := s.repo.GetCredentialsByLogin(ctx, login)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Info().Str("login", login).Msg("Login attempt for unknown user")
			return res, nil
		}
		return nil, err
	}

	if !auth.CheckPassword(creds.PasswordHash, password) {
		logger.Info().Str("login", login).Msg("Login attempt with wrong password")
		return res, nil
	}

	token, expiresIn, err := s.tokens.GenerateAccessToken(creds.ID, creds.Login, int32(creds.Role))
	if err != nil {
		return nil, err
	}

	res.Authenticated = true
	res.UserID = &creds.ID
	res.Token = &token
	res.ExpiresIn = &expiresIn
	return res, nil
}

// ChangePassword replaces the password of a user. Changed reports whether
// the user existed.
func (s *AuthService) ChangePassword(ctx context.Context, req *models.PasswordChange) (*models.PasswordChange, error) {
	if req.NewPassword == nil || *req.NewPassword == "" {
		return nil, apperrors.NewValidationError("La nueva contraseña es obligatoria")
	}
	if req.ConfirmPassword == nil || *req.ConfirmPassword != *req.NewPassword {
		return nil, apperrors.NewBadRequestError(MsgPasswordMismatch)
	}

	hash, err := auth.HashPassword(*req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	rows, err := s.repo.UpdatePassword(ctx, req.UserID, hash)
	if err != nil {
		return nil, err
	}

	return &models.PasswordChange{UserID: req.UserID, Changed: rows > 0}, nil
}
