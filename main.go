package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"contactportal/handlers"
	"contactportal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment: ", os.Getenv("APP_ENV"))

	if os.Getenv("SECRET_KEY") == "" {
		log.Println("WARNING: SECRET_KEY not set, using development fallback")
	}

	pgDSN := os.Getenv("DATABASE_URL")

	// Initialize the database connection pool
	dbPool, pgErr := utils.OpenDB(pgDSN)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisDSN := os.Getenv("REDIS_URL")
	redisPool := utils.OpenRedisPool(redisDSN)
	defer redisPool.Close()

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	// File server for static files
	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// HTTP handlers
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.Index(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		handlers.Register(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		handlers.Login(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		handlers.Logout(w, r, redisPool)
	})
	mux.HandleFunc("/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		handlers.ForgotPassword(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/reset-password/", func(w http.ResponseWriter, r *http.Request) {
		handlers.ResetPassword(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		handlers.Dashboard(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/add-contact", func(w http.ResponseWriter, r *http.Request) {
		handlers.AddContact(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/search-contact", func(w http.ResponseWriter, r *http.Request) {
		handlers.SearchContact(w, r, dbPool, redisPool)
	})
	mux.HandleFunc("/delete-contact/", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteContact(w, r, dbPool, redisPool)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	fmt.Println("Starting server on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
