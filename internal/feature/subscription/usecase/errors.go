// Package usecase implements the business logic for the subscription feature.
package usecase

import "errors"

var (
	// ErrAlreadySubscribed is returned when the user already has an active
	// subscription for the ticker.
	ErrAlreadySubscribed = errors.New("already subscribed to this ticker")

	// ErrSubscriptionNotFound is returned when no subscription exists for
	// the given user and ticker.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidTicker is returned when the submitted ticker is empty after
	// normalization.
	ErrInvalidTicker = errors.New("invalid ticker")
)
