// Package auth guards the admin panel. The panel serves one author, so there
// are no user accounts: a single argon2id-hashed password from configuration
// and short-lived HS256 access tokens.
package auth

import (
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	// AdminPasswordHash is the PHC string (`$argon2id$...`) for the panel
	// password.
	AdminPasswordHash string
	Secret            []byte
	AccessTTL         time.Duration
	ClockSkew         time.Duration
}

type Service struct {
	cfg Config
}

func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) < 32 {
		return nil, errors.New("auth: JWT secret must be at least 32 bytes")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, errors.New("auth: admin password hash required")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.ClockSkew <= 0 {
		cfg.ClockSkew = time.Minute
	}
	return &Service{cfg: cfg}, nil
}

// HashPassword produces a PHC string for the panel password. Exposed for the
// one-time setup path (hash printed, pasted into the environment).
func HashPassword(plain string) (string, error) {
	return argon2id.CreateHash(plain, argon2id.DefaultParams)
}

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Login verifies the panel password and returns a signed access token.
func (s *Service) Login(password string) (string, error) {
	ok, err := argon2id.ComparePasswordAndHash(password, s.cfg.AdminPasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
}

// Verify parses and validates an access token.
func (s *Service) Verify(tokenStr string) error {
	parser := jwt.NewParser(jwt.WithLeeway(s.cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.cfg.Secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("auth: invalid token")
	}
	return nil
}
