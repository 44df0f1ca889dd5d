package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
)

// QuoteProvider は外部マーケットデータプロバイダーへの問い合わせを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/externalapi）ではなくコンシューマー（usecase）が定義します。
type QuoteProvider interface {
	// FetchQuote は指定された銘柄の株価スナップショットを取得します。
	// プロバイダーにデータが存在しない場合はErrSymbolNotFound、
	// 呼び出し自体が失敗した場合はErrUpstreamを返します。
	FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error)

	// FetchProfile は指定された銘柄の企業プロフィールを取得します。
	// エラーの規約はFetchQuoteと同様です。
	FetchProfile(ctx context.Context, symbol string) (*entity.Profile, error)
}

// tickerResult は1銘柄分のフェッチ結果です。両方の失敗もここに保持され、
// 集約側でログ出力と「欠落」への変換が行われます。
type tickerResult struct {
	ticker     string
	quote      *entity.Quote
	profile    *entity.Profile
	quoteErr   error
	profileErr error
}

// Aggregate は全ユニーク銘柄のquoteとprofileを並行で取得し、統合マップを構築します。
//
//   - 入力が空の場合、プロバイダー呼び出しなしで空のマップを返します。
//   - 銘柄ごとに1つのgoroutineを起動し、全ブランチの完了（成功・失敗を問わず）を待ち合わせます。
//     1銘柄の失敗が他の銘柄をキャンセルすることはありません。
//   - 片方のフェッチだけが失敗した場合、その半分はnilとして記録され、もう半分は保持されます。
//   - 両方のフェッチが失敗した銘柄はマップに含まれません。
//
// レートリミッターはgoroutine起動前に銘柄あたり2回（quote + profile）消費されるため、
// プロバイダーの分あたり上限を超えてリクエストが殺到することはありません。
func (du *DigestUsecase) Aggregate(ctx context.Context, tickers []string) entity.ConsolidatedData {
	out := make(entity.ConsolidatedData, len(tickers))
	if len(tickers) == 0 {
		return out
	}

	slog.Info("fetching data for unique tickers", "tickers", tickers)

	results := make(chan tickerResult, len(tickers))
	var wg sync.WaitGroup
	for _, t := range tickers {
		// 起動側で消費することでフェッチの発射レートを抑制する
		du.limiter.WaitIfNeeded()
		du.limiter.WaitIfNeeded()

		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			res := tickerResult{ticker: ticker}
			res.quote, res.quoteErr = du.provider.FetchQuote(ctx, ticker)
			res.profile, res.profileErr = du.provider.FetchProfile(ctx, ticker)
			results <- res
		}(t)
	}

	// 全ブランチの完了を待ってから単一のライターでマップを構築する
	wg.Wait()
	close(results)

	for res := range results {
		if res.quoteErr != nil {
			slog.Error("quote fetch failed", "ticker", res.ticker, "error", res.quoteErr)
		}
		if res.profileErr != nil {
			slog.Error("profile fetch failed", "ticker", res.ticker, "error", res.profileErr)
		}
		// 両方失敗した銘柄はエントリを作らない
		if res.quote == nil && res.profile == nil {
			continue
		}
		out[res.ticker] = entity.TickerData{Quote: res.quote, Profile: res.profile}
	}
	return out
}
