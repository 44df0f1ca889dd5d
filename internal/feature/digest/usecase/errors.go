// Package usecase はdigestフィーチャー（日次配信パイプライン）のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrSymbolNotFound is returned when the provider has no data for a
	// symbol (e.g. a zero sentinel price or a missing company name).
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUpstream is returned when the provider call itself fails: a
	// transport error, a non-2xx status, or an undecodable response body.
	ErrUpstream = errors.New("provider request failed")
)
