// Package mail provides the email transport for daily digest notifications.
//
// The current implementation is a mock that logs the rendered message instead
// of talking to an SMTP relay, matching the development setup. The formatting
// logic is real and shared with whatever transport replaces it.
package mail

import "os"

// Config holds configuration for the mailer.
type Config struct {
	FromAddress string // Sender identity placed in the From header
}

// LoadConfig loads mailer configuration from environment variables.
func LoadConfig() Config {
	return Config{
		FromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
	}
}
