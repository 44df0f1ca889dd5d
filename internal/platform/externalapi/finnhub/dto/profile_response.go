package dto

// ProfileResponse represents the JSON response from the Finnhub
// /stock/profile2 endpoint. An unknown symbol comes back as an empty object,
// so Name == "" is the not-found sentinel.
type ProfileResponse struct {
	Country           string  `json:"country"`
	Currency          string  `json:"currency"`
	Exchange          string  `json:"exchange"`
	Industry          string  `json:"finnhubIndustry"`
	IPO               string  `json:"ipo"`
	Logo              string  `json:"logo"`
	MarketCap         float64 `json:"marketCapitalization"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	SharesOutstanding float64 `json:"shareOutstanding"`
	Ticker            string  `json:"ticker"`
	WebURL            string  `json:"weburl"`
}
