// Package mailer delivers transactional mail. Callers depend on the Sender
// interface so delivery can be swapped out (or silenced) in tests and in
// environments without SMTP credentials.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/savi279/clothing-api/config"
)

type Sender interface {
	Send(to, subject, body string) error
}

// New returns an SMTP-backed sender when credentials are configured and a
// log-only sender otherwise, so local development works out of the box.
func New(cfg config.SMTP) Sender {
	if cfg.Configured() {
		return &SMTPSender{cfg: cfg}
	}
	log.Println("SMTP not configured, outgoing mail will only be logged")
	return &LogSender{}
}

type SMTPSender struct {
	cfg config.SMTP
}

func (s *SMTPSender) Send(to, subject, body string) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogSender writes mail to the process log instead of delivering it.
type LogSender struct{}

func (*LogSender) Send(to, subject, body string) error {
	log.Printf("mail (not sent) to=%s subject=%q", to, subject)
	return nil
}

// OTPBody renders the registration/login code email.
func OTPBody(code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2 style="color: #0056b3;">Hello there!</h2>
	<p>Thank you for registering/logging in to our clothing brand website.</p>
	<p>Your One-Time Password (OTP) is:</p>
	<h3 style="color: #d9534f; font-size: 24px;">%s</h3>
	<p>This OTP is valid for 5 minutes. Please do not share this with anyone.</p>
	<p>If you did not request this, please ignore this email.</p>
	<p>Regards,<br>Your Clothing Brand Team</p>
</div>`, code)
}
