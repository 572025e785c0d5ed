package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	HTTP       HTTPServer
	DB         Database `envPrefix:"DB_"`
	JWT        JWT
	SMTP       SMTP     `envPrefix:"SMTP_"`
	Razorpay   Razorpay `envPrefix:"RAZORPAY_"`
	AdminEmail string   `env:"ADMIN_EMAIL"`
}

type HTTPServer struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type Database struct {
	// URL takes precedence over the individual fields when set.
	URL      string `env:"URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"clothing"`
}

type JWT struct {
	Secret string `env:"JWT_SECRET,required"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	Username string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM"`
}

type Razorpay struct {
	BaseURL   string `env:"BASE_URL" envDefault:"https://api.razorpay.com/v1"`
	KeyID     string `env:"KEY_ID"`
	KeySecret string `env:"KEY_SECRET"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

// Configured reports whether SMTP delivery is usable.
func (s SMTP) Configured() bool {
	return s.Host != "" && s.Username != ""
}
