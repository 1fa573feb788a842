package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"alcyxob/irontrack/internal/config"
)

// --- Error Definitions ---
var (
	ErrAuthDisabled         = errors.New("authentication is not configured")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService guards the dashboard with a single-user password.
// When no password hash is configured the service reports itself
// disabled and the API runs open, which is the expected mode for
// local desktop use.
type AuthService interface {
	Login(ctx context.Context, password string) (token string, err error)
	Enabled() bool
	JWTSecret() string
}

type authService struct {
	passwordHash  string
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService from the auth config.
func NewAuthService(cfg config.AuthConfig) AuthService {
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &authService{
		passwordHash:  cfg.PasswordHash,
		jwtSecret:     cfg.JWTSecret,
		jwtExpiration: expiration,
	}
}

func (s *authService) Enabled() bool {
	return s.passwordHash != ""
}

func (s *authService) JWTSecret() string {
	return s.jwtSecret
}

// Login exchanges the configured password for a signed JWT.
func (s *authService) Login(_ context.Context, password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrAuthenticationFailed
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "owner",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}
