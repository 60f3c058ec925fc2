package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"contactportal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// AddUser registers a new account. Username and email are pre-checked for
// uniqueness; there is no unique index backing this, so two concurrent
// registrations can still race.
func AddUser(username string, email string, password string, db *pgxpool.Pool) error {
	taken, err := UsernameInUse(username, db)
	if err != nil {
		log.Println("error checking username: ", err)
		return err
	}
	if taken {
		return ErrDuplicateUsername
	}

	taken, err = EmailInUse(email, db)
	if err != nil {
		log.Println("error checking email: ", err)
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		log.Println("error hashing password", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4);"
	_, err = db.Exec(ctx, stmt, uuid.New(), username, email, passwordHash)
	if err != nil {
		log.Println("Error adding user", err)
		return err
	}

	return nil
}

// LoginUser verifies the credentials and, on success, establishes a session:
// cookies on the response and a session record in Redis. Lookup failure and
// wrong password are both reported as ErrInvalidCredentials.
func LoginUser(w http.ResponseWriter, r *http.Request, username string, password string, db *pgxpool.Pool, client *redis.Client) error {
	log.Printf("Login attempt for username: %s", username)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "SELECT id, password_hash FROM users WHERE username = $1;"
	row := db.QueryRow(ctx, stmt, username)
	var (
		userID string
		hash   string
	)
	if err := row.Scan(&userID, &hash); err != nil {
		log.Printf("User lookup failed: %v", err)
		return ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, hash) {
		log.Printf("Password verification failed for user: %s", username)
		return ErrInvalidCredentials
	}

	sessionToken := GenerateToken(32)
	csrfToken := GenerateToken(32)

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24, // 24 hours
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		HttpOnly: false, // Needs to be accessible by JavaScript
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24,
	})

	session := models.Session{
		SessionToken: sessionToken,
		UserID:       userID,
		CreatedAt:    time.Now().Format(time.RFC3339),
		ExpiresAt:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		LastActivity: time.Now().Format(time.RFC3339),
		CSRFToken:    csrfToken,
		UserAgent:    GetUserAgent(r),
		IPAddress:    GetIP(r),
	}

	err := StoreSession(client, session, 24*time.Hour)
	if err != nil {
		log.Printf("Failed to store session: %v", err)
		return fmt.Errorf("login failed: %w", err)
	}

	log.Printf("Login successful for user: %s", username)
	return nil
}

// GetUserByID loads the identity value for an authenticated request.
func GetUserByID(userID string, db *pgxpool.Pool) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u := &models.User{}
	stmt := "SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1;"
	row := db.QueryRow(ctx, stmt, userID)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return u, nil
}

// ChangePassword overwrites the stored hash for the given email and revokes
// every live session for that account.
func ChangePassword(email string, password string, db *pgxpool.Pool, client *redis.Client) error {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "UPDATE users SET password_hash = $1 WHERE email = $2 RETURNING id;"

	var updatedID string
	err = db.QueryRow(ctx, stmt, passwordHash, email).Scan(&updatedID)
	if err != nil {
		log.Printf("failed to update user password for user: %s", email)
		return errors.New("unable to update user password")
	}

	if err := DeleteAllUserSessions(client, updatedID); err != nil {
		log.Println("failed to revoke sessions after password change: ", err)
	}

	return nil
}
