package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"contactportal/models"
	"contactportal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Index sends authenticated users to the dashboard and everyone else to login.
func Index(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if _, err := utils.CurrentUser(r, db, redisClient); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func Register(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if _, err := utils.CurrentUser(r, db, redisClient); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		username := r.FormValue("username")
		email := r.FormValue("email")
		password := r.FormValue("password")
		confirmedPassword := r.FormValue("confirm_password")

		if err := utils.ValidateRegistrationInput(username, email, password, confirmedPassword); err != nil {
			if errors.Is(err, utils.ErrPasswordMismatch) {
				renderPage(w, "register.html", models.AuthPageData{Error: "Passwords do not match"})
			} else {
				renderPage(w, "register.html", models.AuthPageData{Error: "All fields are required"})
			}
			return
		}

		err := utils.AddUser(username, email, password, db)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrDuplicateUsername):
				renderPage(w, "register.html", models.AuthPageData{Error: "Username already exists"})
			case errors.Is(err, utils.ErrDuplicateEmail):
				renderPage(w, "register.html", models.AuthPageData{Error: "Email already registered"})
			default:
				log.Println("add user error: ", err, " user: ", username)
				renderPage(w, "register.html", models.AuthPageData{Error: "Error creating account. Please try again."})
			}
			return
		}

		utils.SetFlash(w, "success", "Registration successful! Please login.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	renderPage(w, "register.html", models.AuthPageData{})
}

func Login(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if _, err := utils.CurrentUser(r, db, redisClient); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		username := r.FormValue("username")
		password := r.FormValue("password")

		if username == "" || password == "" {
			renderPage(w, "login.html", models.AuthPageData{Error: "Missing credentials"})
			return
		}

		err := utils.LoginUser(w, r, username, password, db, redisClient)
		if err != nil {
			log.Println("Login failed: ", err)
			if errors.Is(err, utils.ErrInvalidCredentials) {
				renderPage(w, "login.html", models.AuthPageData{Error: "Invalid username or password"})
			} else {
				renderPage(w, "login.html", models.AuthPageData{Error: "Internal error. Please try again."})
			}
			return
		}

		utils.SetFlash(w, "success", "Login successful!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	kind, message := utils.PopFlash(w, r)
	data := models.AuthPageData{}
	if kind == "error" {
		data.Error = message
	} else {
		data.Success = message
	}
	renderPage(w, "login.html", data)
}

func Logout(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) {
	st, err := r.Cookie("session_token")
	if err != nil {
		log.Println("unable to retrieve session token")
	} else if st.Value == "" {
		log.Println("token does not exist")
	} else {
		userID, err := utils.GetUserIDFromST(redisClient, st.Value)
		if err != nil {
			log.Println("error getting user ID from token")
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "session_token",
			Value:    "",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
			Path:     "/",
			MaxAge:   -1,
		})

		http.SetCookie(w, &http.Cookie{
			Name:     "csrf_token",
			Value:    "",
			HttpOnly: false, // Needs to be accessible by JavaScript
			SameSite: http.SameSiteStrictMode,
			Path:     "/",
			MaxAge:   -1,
		})

		err = utils.DeleteSession(redisClient, st.Value)
		if err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
		log.Println("session deleted for user: ", userID)
	}

	utils.SetFlash(w, "success", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func ForgotPassword(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if _, err := utils.CurrentUser(r, db, redisClient); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		email := r.FormValue("email")
		if email == "" {
			renderPage(w, "forgot-password.html", models.AuthPageData{Error: "Email is required"})
			return
		}

		exists, err := utils.EmailInUse(email, db)
		if err != nil {
			log.Println("error checking if email exists: ", email, " |error:", err)
			renderPage(w, "forgot-password.html", models.AuthPageData{Error: "Internal error. Please try again."})
			return
		}

		if exists {
			token, err := utils.GenerateResetToken(email, utils.SecretKey(), utils.ResetTokenValidity)
			if err != nil {
				log.Println("error generating reset token for user: ", email, " |error:", err)
				renderPage(w, "forgot-password.html", models.AuthPageData{Error: "Internal error. Please try again."})
				return
			}
			resetURL := utils.BuildResetURL(token)

			if !utils.MailConfigured() {
				// NOT FOR PRODUCTION: without a mail relay the link goes
				// straight back to whoever asked for it.
				log.Printf("Password reset link for %s: %s", email, resetURL)
				utils.SetFlash(w, "success", fmt.Sprintf("Email not configured. Reset link: %s", resetURL))
			} else if err := utils.SendResetEmail(email, resetURL); err != nil {
				log.Println("error sending password reset email to user: ", email, " |error:", err)
				log.Printf("Reset link (for testing): %s", resetURL)
				utils.SetFlash(w, "error", fmt.Sprintf("Error sending email. Reset link: %s", resetURL))
			} else {
				utils.SetFlash(w, "success", "Password reset instructions have been sent to your email")
			}
		} else {
			// Don't reveal if email exists or not
			utils.SetFlash(w, "success", "If that email exists, password reset instructions have been sent")
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	kind, message := utils.PopFlash(w, r)
	data := models.AuthPageData{}
	if kind == "error" {
		data.Error = message
	} else {
		data.Success = message
	}
	renderPage(w, "forgot-password.html", data)
}

func ResetPassword(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if _, err := utils.CurrentUser(r, db, redisClient); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	token := strings.TrimPrefix(r.URL.Path, "/reset-password/")
	email, err := utils.EmailFromResetToken(token, utils.SecretKey())
	if err != nil {
		utils.SetFlash(w, "error", "The reset link is invalid or has expired")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		password := r.FormValue("password")
		confirmedPassword := r.FormValue("confirm_password")

		if err := utils.ValidateNewPassword(password, confirmedPassword); err != nil {
			if errors.Is(err, utils.ErrPasswordMismatch) {
				renderPage(w, "reset-password.html", models.ResetPageData{Token: token, Error: "Passwords do not match"})
			} else {
				renderPage(w, "reset-password.html", models.ResetPageData{Token: token, Error: "All fields are required"})
			}
			return
		}

		err = utils.ChangePassword(email, password, db, redisClient)
		if err != nil {
			log.Println("error changing password for user: ", email, " |error:", err)
			renderPage(w, "reset-password.html", models.ResetPageData{Token: token, Error: "Internal error. Please try again."})
			return
		}

		utils.SetFlash(w, "success", "Your password has been reset successfully")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	renderPage(w, "reset-password.html", models.ResetPageData{Token: token})
}
