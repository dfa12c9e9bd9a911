package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "userhub/internal/errors"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hashed, err := h.Hash("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	ok, err := h.Verify("password123", hashed)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong-password", hashed)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsEveryCall(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("password123")
	assert.NoError(t, err)
	second, err := h.Hash("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	h := NewPasswordHasher()

	_, err := h.Hash("")
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestPasswordHasher_CorruptStoredHash(t *testing.T) {
	h := NewPasswordHasher()

	ok, err := h.Verify("password123", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperrors.ErrCorruptHash)
}
