// Package finnhub provides a client for the Finnhub stock market API.
package finnhub

import (
	"os"
	"time"
)

// defaultBaseURL is used when FINNHUB_BASE_URL is not set.
const defaultBaseURL = "https://finnhub.io/api/v1"

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout; bounds every fetch so a hung call fails instead of stalling the join
}

// LoadConfig loads Finnhub configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("FINNHUB_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FINNHUB_API_KEY"),
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}
