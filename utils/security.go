package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// SecretKey returns the server-held signing secret. The fallback value exists
// so the app boots in development; production must set SECRET_KEY.
func SecretKey() []byte {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "dev-secret-key-change-in-production"
	}
	return []byte(key)
}

// Authorize checks the request's session token and CSRF token against the
// session record in Redis. The CSRF token may arrive as a header (JSON
// endpoints) or a form field (HTML forms).
func Authorize(r *http.Request, client *redis.Client) error {
	st, err := r.Cookie("session_token")
	if err != nil || st.Value == "" {
		return errors.New("unauthorized: missing or empty session token")
	}
	// Check if the session token exists in redis
	exists, err := ValidateSession(client, st.Value)
	if err != nil {
		return errors.New("error: invalid session token")
	}
	if !exists {
		return errors.New("unauthorized: session token does not exist")
	}

	csrf := r.Header.Get("X-CSRF-Token")
	if csrf == "" {
		csrf = r.FormValue("csrf_token")
	}
	expectedCSRF, err := GetCSRFFromST(client, st.Value)
	if err != nil {
		return errors.New("unauthorized: could not fetch csrf token")
	}
	if csrf == "" || expectedCSRF == "" || csrf != expectedCSRF {
		return errors.New("unauthorized: invalid CSRF token")
	}
	return nil
}

func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}
