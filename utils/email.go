package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail sends a plain-text message through the SMTP server named in
// the environment (EMAIL_FROM, EMAIL_PASSWORD, SMTP_HOST, SMTP_PORT).
func SendEmail(to string, subject string, body string) error {
	from := os.Getenv("EMAIL_FROM")
	password := os.Getenv("EMAIL_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtp.PlainAuth("", from, password, host)

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body))

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
