package entity

// Recipient is a user eligible for the daily digest, together with the set
// of tickers they are subscribed to. The ticker list is eager-loaded by the
// ledger so the dispatch loop never goes back to the database per user.
type Recipient struct {
	UserID    uint
	FirstName string
	Email     string
	Tickers   []string
}
