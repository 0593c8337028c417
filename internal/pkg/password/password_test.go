//go:build unit

package password_test

import (
	"strings"
	"testing"

	"car-rental/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "password124"), password.ErrMismatch)
}

func TestRejectedInput(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrEmpty)

	_, err = password.HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, password.ErrTooLong)

	err = password.ComparePassword("not-a-bcrypt-hash", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
