package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Mail holds the outbound message settings; read at submit time
type Mail struct {
	ServiceID  string        `env:"ARCHIVE_EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"ARCHIVE_EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"ARCHIVE_EMAILJS_PUBLIC_KEY"`
	Endpoint   string        `env:"ARCHIVE_EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	Timeout    time.Duration `env:"ARCHIVE_EMAILJS_TIMEOUT" envDefault:"10s"`
}

// Complete reports whether every required identifier is set
func (m Mail) Complete() bool {
	return m.ServiceID != "" && m.TemplateID != "" && m.PublicKey != ""
}

// App holds startup settings
type App struct {
	RedirectURL  string `env:"ARCHIVE_REDIRECT_URL"`
	OTelEndpoint string `env:"ARCHIVE_OTEL_ENDPOINT"`
	Audio        bool   `env:"ARCHIVE_AUDIO" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadMail reads mail settings from the current environment
func LoadMail() (Mail, error) {
	var m Mail
	if err := ParseEnv(&m); err != nil {
		return Mail{}, err
	}
	return m, nil
}

// LoadApp reads startup settings from the current environment
func LoadApp() (App, error) {
	var a App
	if err := ParseEnv(&a); err != nil {
		return App{}, err
	}
	return a, nil
}

// LoadDotEnv merges .env files into the environment without overriding set variables.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
