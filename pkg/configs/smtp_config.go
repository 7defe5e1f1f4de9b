// pkg/configs/smtp_config.go
package configs

import (
	"os"
	"strconv"
)

// SMTPConfig holds the outgoing mail transport parameters.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadSMTPConfig() SMTPConfig {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	username := os.Getenv("SMTP_USERNAME")

	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     port,
		Username: username,
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", username),
	}
}
