// Package mailer sends dispatch emails to maintenance authorities.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type Mailer interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer delivers over plain SMTP with AUTH.
type SMTPMailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	msg := strings.Builder{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// LogMailer writes the email to the service log instead of sending it.
// Used when no SMTP credentials are configured.
type LogMailer struct{}

func (LogMailer) Send(to []string, subject, body string) error {
	masked := make([]string, len(to))
	for i, addr := range to {
		masked[i] = MaskEmail(addr)
	}
	log.Printf("[INFO] Email (not sent, log mode) - To: %s, Subject: %s", strings.Join(masked, ", "), subject)
	return nil
}

// RecipientDisplay renders the audit string stored on a dispatched report:
// the authority name plus the masked first recipient.
func RecipientDisplay(authorityName string, emails []string) string {
	if len(emails) == 0 {
		return authorityName
	}
	return fmt.Sprintf("%s (%s)", authorityName, MaskEmail(emails[0]))
}

// MaskEmail hides the middle of the local part for log output.
// "nicole@city.example" becomes "n****e@city.example".
func MaskEmail(addr string) string {
	at := strings.Index(addr, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := addr[:at], addr[at:]
	if len(local) <= 2 {
		return strings.Repeat("*", len(local)) + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + domain
}
