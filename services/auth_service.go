package services

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles password and token hashing for both admin and
// employee authentication
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Token Management
// ════════════════════════════════════════════════════════════

// HashToken hashes a token using SHA256 for storage in database.
// Raw tokens are never persisted.
func (s *AuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var authService *AuthService

// GetAuthService returns the global auth service instance
func GetAuthService() *AuthService {
	if authService == nil {
		authService = NewAuthService()
	}
	return authService
}

// Convenience functions using global service

// HashPassword hashes a password using the global service
func HashPassword(password string) (string, error) {
	return GetAuthService().HashPassword(password)
}

// VerifyPassword verifies a password using the global service
func VerifyPassword(hash, password string) bool {
	return GetAuthService().VerifyPassword(hash, password)
}

// ValidatePassword validates password requirements using the global service
func ValidatePassword(password string) bool {
	return GetAuthService().ValidatePassword(password)
}

// HashToken hashes a token using the global service
func HashToken(token string) string {
	return GetAuthService().HashToken(token)
}
