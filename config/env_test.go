package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMailDefaults(t *testing.T) {
	t.Setenv("ARCHIVE_EMAILJS_SERVICE_ID", "svc")
	t.Setenv("ARCHIVE_EMAILJS_TEMPLATE_ID", "tpl")
	t.Setenv("ARCHIVE_EMAILJS_PUBLIC_KEY", "key")

	m, err := LoadMail()
	if err != nil {
		t.Fatalf("LoadMail failed: %v", err)
	}
	if !m.Complete() {
		t.Error("Expected complete mail config")
	}
	if m.Endpoint != DefaultEmailJSEndpoint {
		t.Errorf("Expected default endpoint, got %q", m.Endpoint)
	}
	if m.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", m.Timeout)
	}
}

func TestLoadMailIncomplete(t *testing.T) {
	t.Setenv("ARCHIVE_EMAILJS_SERVICE_ID", "svc")
	t.Setenv("ARCHIVE_EMAILJS_TEMPLATE_ID", "")
	t.Setenv("ARCHIVE_EMAILJS_PUBLIC_KEY", "key")

	m, err := LoadMail()
	if err != nil {
		t.Fatalf("LoadMail failed: %v", err)
	}
	if m.Complete() {
		t.Error("Expected incomplete mail config")
	}
}

func TestLoadAppBadBool(t *testing.T) {
	t.Setenv("ARCHIVE_AUDIO", "maybe")
	if _, err := LoadApp(); err == nil {
		t.Error("Expected parse error for invalid bool")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ARCHIVE_REDIRECT_URL=https://example.com/inbox\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARCHIVE_REDIRECT_URL", "")
	os.Unsetenv("ARCHIVE_REDIRECT_URL")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	a, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp failed: %v", err)
	}
	if a.RedirectURL != "https://example.com/inbox" {
		t.Errorf("Expected redirect from .env, got %q", a.RedirectURL)
	}
	if !a.Audio {
		t.Error("Expected audio enabled by default")
	}
}
