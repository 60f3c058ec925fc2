package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailConfigured reports whether an outbound mail relay is usable. When it is
// not, callers fall back to surfacing the reset link directly (development
// mode only).
func MailConfigured() bool {
	return os.Getenv("SENDGRID_API_KEY") != ""
}

// BuildResetURL turns a reset token into the absolute link mailed to the user.
func BuildResetURL(token string) string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimRight(base, "/") + "/reset-password/" + token
}

// SendResetEmail delivers the password-reset link via SendGrid.
func SendResetEmail(email string, resetURL string) error {
	senderName := os.Getenv("MAIL_SENDER_NAME")
	if senderName == "" {
		senderName = "Contact Portal Support"
	}
	sender := os.Getenv("MAIL_DEFAULT_SENDER")
	if sender == "" {
		sender = "noreply@contactportal.com"
	}

	from := mail.NewEmail(senderName, sender)
	subject := "Password Reset Request"

	to := mail.NewEmail("", email)

	plainTextContent := fmt.Sprintf(`To reset your password, visit the following link:
%s

This link will expire in 1 hour.

If you did not make this request, please ignore this email.
`, resetURL)
	htmlContent := fmt.Sprintf(`<p>To reset your password, visit the following link:</p>
<p><a href=%q>%s</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you did not make this request, please ignore this email.</p>`, resetURL, resetURL)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Println("mail relay rejected message, status: ", response.StatusCode, " body: ", response.Body)
		return fmt.Errorf("mail relay returned status %d", response.StatusCode)
	}

	log.Println("password reset email sent to user: ", email)
	return nil
}
