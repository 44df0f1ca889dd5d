package entity

import (
	"fmt"
	"time"
)

// Run statuses recorded in the summary.
const (
	// StatusSuccess indicates the run reached the notification stage.
	StatusSuccess = "success"
	// StatusNoDataFetched indicates the run ended before any notification
	// could be attempted (no tickers, no data, or no recipients).
	StatusNoDataFetched = "no_data_fetched"
)

// RunSummary is the single durable record written at the end of every
// dispatch run, regardless of partial failures inside the run.
type RunSummary struct {
	Date             string    `json:"date"`
	StartUTC         time.Time `json:"timestamp_utc_start"`
	EndUTC           time.Time `json:"timestamp_utc_end"`
	EmailsSent       int       `json:"emails_sent"`
	TickersProcessed []string  `json:"tickers_processed"`
	Status           string    `json:"status"`
}

// Key returns the object key the summary is stored under.
// Format: daily_logs/{YYYY-MM-DD}.json
func (s RunSummary) Key() string {
	return fmt.Sprintf("daily_logs/%s.json", s.Date)
}
