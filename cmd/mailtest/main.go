// Sends a real password-reset email through the configured relay. Used to
// verify SendGrid credentials without going through the web flow:
//
//	go run ./cmd/mailtest someone@example.com
package main

import (
	"log"
	"os"

	"contactportal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing..")
	}

	if len(os.Args) < 2 {
		log.Fatal("usage: mailtest <recipient>")
	}
	recipient := os.Args[1]

	if !utils.MailConfigured() {
		log.Fatal("SENDGRID_API_KEY is not set")
	}

	token, err := utils.GenerateResetToken(recipient, utils.SecretKey(), utils.ResetTokenValidity)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	if err := utils.SendResetEmail(recipient, utils.BuildResetURL(token)); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}
	log.Println("test reset email sent to: ", recipient)
}
