package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pawfectstay/booking-service/internal/core/domain"
)

// HashPassword generates a one-way salted hash of the password. Only the
// hash is ever stored.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.ErrValidation
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// VerifyPassword validates the cleartext password against the stored hash
// using bcrypt's constant-time comparison. Raw secrets are never compared
// directly.
func VerifyPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrAuthentication
		}
		return err
	}
	return nil
}
