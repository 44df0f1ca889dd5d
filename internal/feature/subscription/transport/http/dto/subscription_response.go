package dto

import "time"

// SubscriptionItem represents a subscription in API responses.
// It contains only the public-facing fields needed by clients.
type SubscriptionItem struct {
	ID        uint      `json:"id"`
	Ticker    string    `json:"ticker"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteResponse reports how many subscriptions an unsubscribe removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
