package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"contactportal/models"
	"contactportal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Dashboard lists the logged-in user's contacts and hosts the add form.
func Dashboard(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	user, err := utils.CurrentUser(r, db, redisClient)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	st, _ := r.Cookie("session_token")
	csrfToken, err := utils.GetCSRFFromST(redisClient, st.Value)
	if err != nil {
		log.Println("error retrieving csrf token: ", err)
	}

	if err := utils.UpdateLastActivityRedis(redisClient, st.Value); err != nil {
		log.Println("Error updating last activity in Redis:", err)
	}
	if err := utils.UpdateLastActivityDB(db, user.ID.String()); err != nil {
		log.Println("Error updating last activity in database:", err)
	}

	contacts, err := utils.GetContacts(user.ID.String(), db)
	if err != nil {
		log.Println("Error retrieving contacts for user:", user.ID, ": ", err)
	}

	kind, message := utils.PopFlash(w, r)
	data := models.DashboardData{
		Username:  user.Username,
		Contacts:  contacts,
		CSRFtoken: csrfToken,
	}
	if kind == "error" {
		data.Error = message
	} else {
		data.Success = message
	}

	renderPage(w, "dashboard.html", data)
}

func AddContact(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := utils.CurrentUser(r, db, redisClient)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := utils.Authorize(r, redisClient); err != nil {
		log.Println("Authorization failed:", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	mobile := r.FormValue("mobile")
	email := r.FormValue("email")
	address := r.FormValue("address")
	registrationNumber := r.FormValue("registration_number")

	if err := utils.ValidateContactInput(mobile, email, address, registrationNumber); err != nil {
		utils.SetFlash(w, "error", "All fields are required")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	err = utils.AddContact(user.ID.String(), mobile, email, address, registrationNumber, db)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicateRegistration) {
			utils.SetFlash(w, "error", "A contact with this registration number already exists")
		} else {
			log.Println("error adding contact for user: ", user.ID, " |error:", err)
			utils.SetFlash(w, "error", "Error saving contact. Please try again.")
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	utils.SetFlash(w, "success", "Contact added successfully")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// SearchContact is the JSON lookup endpoint: {"registration_number": "..."}
// in, contact JSON out. It answers 401 rather than redirecting since callers
// are scripts, not browsers following links.
func SearchContact(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		jsonError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	user, err := utils.CurrentUser(r, db, redisClient)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		RegistrationNumber string `json:"registration_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Registration number is required")
		return
	}
	if req.RegistrationNumber == "" {
		jsonError(w, http.StatusBadRequest, "Registration number is required")
		return
	}

	contact, err := utils.FindContact(user.ID.String(), req.RegistrationNumber, db)
	if err != nil {
		if errors.Is(err, utils.ErrContactNotFound) {
			jsonError(w, http.StatusNotFound, "Contact not found")
			return
		}
		log.Println("error searching contact for user: ", user.ID, " |error:", err)
		jsonError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.NewContactResponse(*contact))
}

func DeleteContact(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := utils.CurrentUser(r, db, redisClient)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := utils.Authorize(r, redisClient); err != nil {
		log.Println("Authorization failed:", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	contactID := strings.TrimPrefix(r.URL.Path, "/delete-contact/")

	err = utils.DeleteContact(user.ID.String(), contactID, db)
	if err != nil {
		// Someone else's contact and a missing one look the same here.
		if errors.Is(err, utils.ErrContactNotFound) {
			utils.SetFlash(w, "error", "Contact not found")
		} else {
			log.Println("error deleting contact for user: ", user.ID, " |error:", err)
			utils.SetFlash(w, "error", "Error deleting contact. Please try again.")
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	utils.SetFlash(w, "success", "Contact deleted successfully")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
