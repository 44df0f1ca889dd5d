// Package dto defines data transfer objects for the Finnhub API responses.
package dto

// QuoteResponse represents the JSON response from the Finnhub /quote endpoint.
// A symbol unknown to Finnhub comes back as all zeroes rather than an error,
// so CurrentPrice == 0 is the not-found sentinel.
type QuoteResponse struct {
	CurrentPrice  float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	HighPrice     float64 `json:"h"`
	LowPrice      float64 `json:"l"`
	OpenPrice     float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}
