// Package entity defines the domain entities for the subscription feature.
package entity

import "time"

// Subscription represents a user's subscription to a single ticker.
// The (UserID, Ticker) pair is unique among active subscriptions; it is
// created on subscribe and deleted on unsubscribe.
type Subscription struct {
	// ID is the unique identifier for the subscription.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user. Subscriptions share the user's lifetime.
	UserID uint `gorm:"not null;uniqueIndex:sub_user_ticker,priority:1"`

	// Ticker is the normalized (uppercase) symbol of the security.
	Ticker string `gorm:"size:10;not null;uniqueIndex:sub_user_ticker,priority:2;index"`

	// CreatedAt is the timestamp when the subscription was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the subscription was last updated.
	UpdatedAt time.Time
}
