package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetTokenValidity is how long a password-reset link stays redeemable.
const ResetTokenValidity = time.Hour

type resetClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateResetToken issues a signed token binding the target email address.
// Nothing is persisted server-side; signature and expiry carry all the state.
func GenerateResetToken(email string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, resetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// EmailFromResetToken verifies the signature and expiry and returns the
// embedded email. A tampered token and an expired one are indistinguishable
// to the caller: both come back as ErrResetTokenInvalid.
func EmailFromResetToken(tokenString string, secret []byte) (string, error) {
	claims := &resetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", ErrResetTokenInvalid
	}

	if !token.Valid || claims.Email == "" {
		return "", ErrResetTokenInvalid
	}

	return claims.Email, nil
}
