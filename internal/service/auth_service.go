package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies the parent PIN and issues session tokens. The PIN is
// configured as a bcrypt hash; when no hash or secret is set, parent login
// is disabled and the guarded endpoints reject everything.
type AuthService struct {
	pinHash  string
	secret   []byte
	duration time.Duration
}

// NewAuthService creates the auth service
func NewAuthService(pinHash, secret string, duration time.Duration) *AuthService {
	return &AuthService{
		pinHash:  pinHash,
		secret:   []byte(secret),
		duration: duration,
	}
}

// Enabled reports whether parent login is configured
func (s *AuthService) Enabled() bool {
	return s.pinHash != "" && len(s.secret) > 0
}

// Login verifies the PIN and returns a signed session token
func (s *AuthService) Login(pin string) (string, error) {
	if !s.Enabled() {
		return "", ErrInvalidPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", ErrInvalidPIN
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "parent",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks a session token's signature and expiry
func (s *AuthService) Validate(tokenString string) error {
	if !s.Enabled() {
		return fmt.Errorf("parent login is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		})
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid session token")
	}
	return nil
}

// HashPIN produces the bcrypt hash to store in PARENT_PIN_HASH
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}
