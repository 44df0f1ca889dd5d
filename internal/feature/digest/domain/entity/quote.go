// Package entity defines the domain models for the digest feature.
package entity

// Quote represents a point-in-time price snapshot for a ticker as returned
// by the market data provider. It is immutable once fetched and is never
// persisted.
type Quote struct {
	CurrentPrice  float64 // Latest traded price
	HighPrice     float64 // Highest price of the day
	LowPrice      float64 // Lowest price of the day
	OpenPrice     float64 // Opening price of the day
	PreviousClose float64 // Previous session's closing price
	Timestamp     int64   // Provider timestamp (epoch seconds)
}
