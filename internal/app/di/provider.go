// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/externalapi/finnhub"
	infrahttp "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/http"
)

// NewQuoteProvider creates a fully configured Finnhub client with HTTP client.
func NewQuoteProvider() *finnhub.Client {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return finnhub.NewClient(cfg, httpClient)
}
