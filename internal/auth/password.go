package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "userhub/internal/errors"
)

const bcryptCost = 10

// PasswordHasher hashes and verifies passwords with bcrypt. bcrypt salts
// every call, so two hashes of the same password never match byte for byte.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash returns a salted one-way hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperrors.NewValidation("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A wrong password
// is not an error; a stored hash bcrypt cannot parse is.
func (h *PasswordHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperrors.ErrCorruptHash
}
