package utils_test

import (
	"testing"
	"time"

	"contactportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := utils.GenerateResetToken("alice@example.com", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := utils.EmailFromResetToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestResetTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	// Issued already past its validity window.
	token, err := utils.GenerateResetToken("alice@example.com", secret, -time.Second)
	require.NoError(t, err)

	_, err = utils.EmailFromResetToken(token, secret)
	assert.ErrorIs(t, err, utils.ErrResetTokenInvalid)
}

func TestResetTokenJustInsideValidity(t *testing.T) {
	secret := []byte("test-secret")

	token, err := utils.GenerateResetToken("alice@example.com", secret, time.Second)
	require.NoError(t, err)

	email, err := utils.EmailFromResetToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestResetTokenTampered(t *testing.T) {
	secret := []byte("test-secret")

	token, err := utils.GenerateResetToken("alice@example.com", secret, time.Hour)
	require.NoError(t, err)

	// Flip one byte somewhere in the payload.
	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	_, err = utils.EmailFromResetToken(string(raw), secret)
	assert.ErrorIs(t, err, utils.ErrResetTokenInvalid)
}

func TestResetTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateResetToken("alice@example.com", []byte("secret-one"), time.Hour)
	require.NoError(t, err)

	_, err = utils.EmailFromResetToken(token, []byte("secret-two"))
	assert.ErrorIs(t, err, utils.ErrResetTokenInvalid)
}

func TestResetTokenGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := utils.EmailFromResetToken(token, []byte("test-secret"))
		assert.ErrorIs(t, err, utils.ErrResetTokenInvalid, "token %q", token)
	}
}
