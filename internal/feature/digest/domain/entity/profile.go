package entity

// Profile represents the company profile snapshot for a ticker as returned
// by the market data provider. Like Quote, it is immutable and not persisted.
type Profile struct {
	Name              string  // Company name
	Ticker            string  // Symbol as used on the listed exchange
	Exchange          string  // Listed exchange
	Industry          string  // Provider industry classification
	WebURL            string  // Company website
	IPODate           string  // IPO date (YYYY-MM-DD)
	LogoURL           string  // Logo image URL
	Phone             string  // Company phone number
	Country           string  // Country of headquarters
	Currency          string  // Currency used in filings
	MarketCap         float64 // Market capitalization
	SharesOutstanding float64 // Number of outstanding shares
}
