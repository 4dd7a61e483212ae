package templates

import (
	"strings"
	"testing"
)

func TestRender_VerifyEmail(t *testing.T) {
	subject, text, html, err := Render("verify_email", map[string]any{
		"Name":      "Alice",
		"Email":     "alice@example.com",
		"VerifyURL": "https://app.example.com/api/email/verify/1/abc",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if subject == "" {
		t.Error("empty subject")
	}
	if !strings.Contains(text, "https://app.example.com/api/email/verify/1/abc") {
		t.Error("text body must contain the verify link")
	}
	if !strings.Contains(html, "https://app.example.com/api/email/verify/1/abc") {
		t.Error("html body must contain the verify link")
	}
	if !strings.Contains(text, "Alice") {
		t.Error("text body must greet by name")
	}
}

func TestRender_ForgotPassword(t *testing.T) {
	subject, text, _, err := Render("forgot_password", map[string]any{
		"ResetURL":  "https://app.example.com/reset-password?token=tok",
		"ExpiresIn": "30 minutes",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if subject == "" {
		t.Error("empty subject")
	}
	if !strings.Contains(text, "token=tok") {
		t.Error("text body must contain the reset link")
	}
	// Missing Name falls back to the default greeting.
	if !strings.Contains(text, "there") {
		t.Error("text body must fall back when Name is absent")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	if _, _, _, err := Render("no_such_template", nil); err == nil {
		t.Error("unknown template must error")
	}
}
