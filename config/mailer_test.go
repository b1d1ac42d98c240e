package config

import (
	"errors"
	"testing"
)

func TestSendMailNoRecipients(t *testing.T) {
	if err := SendMail(nil, "subject", "<p>body</p>"); err != nil {
		t.Fatalf("got %v, want nil for empty recipient list", err)
	}
}

func TestSendMailUnconfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")

	err := SendMail([]string{"staff@example.com"}, "subject", "<p>body</p>")
	if !errors.Is(err, ErrMailNotConfigured) {
		t.Fatalf("got %v, want ErrMailNotConfigured", err)
	}
}

func TestSendMailReadsEnvAtCallTime(t *testing.T) {
	// Settings applied after package init (the .env load path) must be seen.
	t.Setenv("SMTP_HOST", "127.0.0.1")
	t.Setenv("SMTP_PORT", "1")
	t.Setenv("SMTP_FROM", "no-reply@example.com")

	err := SendMail([]string{"staff@example.com"}, "subject", "<p>body</p>")
	if err == nil {
		t.Fatal("expected a dial error against a closed port")
	}
	if errors.Is(err, ErrMailNotConfigured) {
		t.Fatal("configured settings were not picked up at call time")
	}
}
