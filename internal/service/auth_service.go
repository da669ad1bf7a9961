package service

import (
	"errors"
	"time"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued identity token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// AuthService handles credential checks and token issuance
type AuthService struct {
	userRepo  domain.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

// Login verifies the credentials and issues a signed 7-day token.
// Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Username, TokenTTL)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Msg("User authenticated")
	return &LoginResult{Token: token, User: user}, nil
}

// ChangePassword verifies the current password and stores a bcrypt hash
// of the new one.
func (s *AuthService) ChangePassword(username, currentPassword, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(username, string(hash))
}
