package entity

// TickerData holds the two halves of a ticker's fetched data. A nil half
// marks a fetch failure for that half only, not an error for the whole
// ticker.
type TickerData struct {
	Quote   *Quote
	Profile *Profile
}

// ConsolidatedData maps a ticker to its fetched data. It is built once per
// dispatch run and then narrowed down per recipient. A ticker is present iff
// at least one of its halves was fetched successfully.
type ConsolidatedData map[string]TickerData
