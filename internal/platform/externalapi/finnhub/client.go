package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/externalapi/finnhub/dto"
)

// Client はFinnhub外部APIから株価・企業データを取得するQuoteProvider実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchQuote はFinnhubの/quoteエンドポイントから株価スナップショットを取得します。
// 銘柄は呼び出し前に大文字に正規化されます。
// 現在値がゼロのセンチネルレスポンスはusecase.ErrSymbolNotFoundとして報告されます。
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(symbol)

	var body dto.QuoteResponse
	if err := c.get(ctx, "/quote", symbol, &body); err != nil {
		return nil, err
	}

	// Finnhubは未知の銘柄に対してエラーではなく全フィールドゼロを返す
	if body.CurrentPrice == 0 {
		return nil, fmt.Errorf("quote for %q: %w", symbol, usecase.ErrSymbolNotFound)
	}

	return &entity.Quote{
		CurrentPrice:  body.CurrentPrice,
		HighPrice:     body.HighPrice,
		LowPrice:      body.LowPrice,
		OpenPrice:     body.OpenPrice,
		PreviousClose: body.PreviousClose,
		Timestamp:     body.Timestamp,
	}, nil
}

// FetchProfile はFinnhubの/stock/profile2エンドポイントから企業プロフィールを取得します。
// 企業名が空のレスポンスはusecase.ErrSymbolNotFoundとして報告されます。
func (c *Client) FetchProfile(ctx context.Context, symbol string) (*entity.Profile, error) {
	symbol = strings.ToUpper(symbol)

	var body dto.ProfileResponse
	if err := c.get(ctx, "/stock/profile2", symbol, &body); err != nil {
		return nil, err
	}

	// 未知の銘柄は空オブジェクトで返る
	if body.Name == "" {
		return nil, fmt.Errorf("profile for %q: %w", symbol, usecase.ErrSymbolNotFound)
	}

	return &entity.Profile{
		Name:              body.Name,
		Ticker:            body.Ticker,
		Exchange:          body.Exchange,
		Industry:          body.Industry,
		WebURL:            body.WebURL,
		IPODate:           body.IPO,
		LogoURL:           body.Logo,
		Phone:             body.Phone,
		Country:           body.Country,
		Currency:          body.Currency,
		MarketCap:         body.MarketCap,
		SharesOutstanding: body.SharesOutstanding,
	}, nil
}

// get は指定されたエンドポイントへGETリクエストを実行し、JSONレスポンスをoutにデコードします。
// トランスポートエラー、4xx/5xxステータス、デコード失敗はすべてusecase.ErrUpstreamに分類されます。
func (c *Client) get(ctx context.Context, path, symbol string, out any) error {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.cfg.APIKey)

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s %q: %w: %w", path, symbol, usecase.ErrUpstream, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %q: %w: %w", path, symbol, usecase.ErrUpstream, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("%s %q: %w: http %d", path, symbol, usecase.ErrUpstream, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %q: %w: decode: %w", path, symbol, usecase.ErrUpstream, err)
	}
	return nil
}
