package config

import (
	"crypto/tls"
	"errors"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

var ErrMailNotConfigured = errors.New("smtp not configured (SMTP_HOST/SMTP_FROM)")

type smtpSettings struct {
	host          string
	port          int
	user          string
	pass          string
	from          string // e.g. "Agency Back Office <no-reply@your.org>"
	skipTLSVerify bool
}

// smtpConfig reads the SMTP environment on every call so settings loaded
// from a .env file after package init are still picked up.
func smtpConfig() smtpSettings {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return smtpSettings{
		host:          os.Getenv("SMTP_HOST"),
		port:          port,
		user:          os.Getenv("SMTP_USER"),
		pass:          os.Getenv("SMTP_PASS"),
		from:          os.Getenv("SMTP_FROM"),
		skipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// SendMail delivers an HTML notification mail. No-op when there are no
// recipients; an unconfigured SMTP host is an error so callers can log it.
func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	cfg := smtpConfig()
	if cfg.host == "" || cfg.from == "" {
		return ErrMailNotConfigured
	}

	m := mail.NewMessage()
	m.SetHeader("From", cfg.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(cfg.host, cfg.port, cfg.user, cfg.pass)

	// Mandatory STARTTLS on 587 suits Gmail/Office365 relays.
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.host,
		InsecureSkipVerify: cfg.skipTLSVerify, // dev only, via SMTP_SKIP_TLS_VERIFY=1
	}

	return d.DialAndSend(m)
}
