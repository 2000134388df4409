package utils

import (
	"fmt"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails the API triggers.
type Mailer interface {
	SendWaitlistWelcome(email, name string) error
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	FromName string `yaml:"fromName"`
}

func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != ""
}

type smtpMailer struct {
	cfg SMTPConfig
	log *logrus.Logger
}

// NewMailer returns an SMTP mailer; without SMTP settings the mail is only logged.
func NewMailer(cfg SMTPConfig, log *logrus.Logger) Mailer {
	return &smtpMailer{cfg: cfg, log: log}
}

func (m *smtpMailer) SendWaitlistWelcome(email, name string) error {
	if !m.cfg.configured() {
		m.log.WithField("to", MaskEmail(email)).Info("[MOCK EMAIL] waitlist welcome")
		return nil
	}

	name = strings.ReplaceAll(strings.TrimSpace(name), "\r\n", " ")

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thanks for joining the StayEase waitlist.\n"+
			"We will let you know as soon as bookings open in your area.\n",
		name,
	)
	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<body style="background:#f5f7fb;font-family:Arial, Helvetica, sans-serif;color:#222;">
  <div style="max-width:640px;margin:20px auto;background:#fff;border:1px solid #e6eef6;padding:24px;border-radius:8px;">
    <h2>You're on the list</h2>
    <p>Hi %s,</p>
    <p>Thanks for joining the StayEase waitlist. We will let you know as soon as bookings open in your area.</p>
  </div>
</body>
</html>`, html.EscapeString(name))

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.Username, m.cfg.FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to the StayEase waitlist")
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		m.log.WithError(err).WithField("to", MaskEmail(email)).Error("failed to send waitlist email")
		return err
	}

	m.log.WithField("to", MaskEmail(email)).Info("waitlist email sent")
	return nil
}
