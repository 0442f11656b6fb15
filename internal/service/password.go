// File: internal/service/password.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"citas-api/internal/model"
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword compares a plaintext password against a bcrypt hash,
// returning nil on match.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateUser verifies a plaintext password against the stored hash.
// Accounts provisioned by an external identity provider carry no hash and
// can never authenticate locally.
func AuthenticateUser(user model.User, password string) error {
	if user.PasswordHash == nil {
		return errors.New("account has no local password")
	}
	if err := ComparePassword(*user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
