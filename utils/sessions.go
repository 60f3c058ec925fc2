package utils

import (
	"log"
	"net/http"
	"time"

	"contactportal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func CookieExists(r *http.Request, name string) bool {
	st, err := r.Cookie(name)
	return err == nil && st.Value != ""
}

// GetUserAgent returns the User-Agent string from the request
func GetUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// GetIP returns the IP address of the client from the request
func GetIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

// CurrentUser resolves the request's session cookie into the logged-in user.
// Any broken link in cookie -> session -> user row means ErrNotAuthenticated.
func CurrentUser(r *http.Request, db *pgxpool.Pool, client *redis.Client) (*models.User, error) {
	if !CookieExists(r, "session_token") {
		return nil, ErrNotAuthenticated
	}
	st, err := r.Cookie("session_token")
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	session, err := GetSession(client, st.Value)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil {
		log.Println("session has malformed expiry: ", err)
		return nil, ErrNotAuthenticated
	}
	if !time.Now().Before(expiresAt) {
		return nil, ErrNotAuthenticated
	}

	return GetUserByID(session.UserID, db)
}
