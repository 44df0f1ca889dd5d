package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/shared/ratelimiter"
)

// fallbackFirstName は表示名が未設定の受信者への宛名です。
const fallbackFirstName = "Valued Customer"

// SubscriptionLedger は購読データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SubscriptionLedger interface {
	// ListUniqueTickers は全ユーザーを横断した購読銘柄のユニークな集合を返します。
	ListUniqueTickers(ctx context.Context) ([]string, error)

	// ListRecipients は1件以上の購読を持つ全ユーザーを、
	// 購読銘柄リストを積み込んだ状態で返します。順序は保証されません。
	ListRecipients(ctx context.Context) ([]entity.Recipient, error)
}

// Notifier abstracts the per-user message transport. A nil error means the
// message was confirmed dispatched; ordinary transport failures come back as
// errors and never as panics.
type Notifier interface {
	Send(ctx context.Context, recipient, firstName string, data entity.ConsolidatedData) error
}

// RunLogSink abstracts durable storage for run summaries. Write returns the
// stored location; the orchestrator logs and swallows any error since the
// summary is an operational concern, not part of the run's outcome.
type RunLogSink interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
}

// DigestUsecase は日次配信パイプラインを統括します:
// 銘柄の集約、受信者の列挙、受信者ごとの射影、通知の送出、実行サマリの永続化。
type DigestUsecase struct {
	ledger   SubscriptionLedger
	provider QuoteProvider
	notifier Notifier
	sink     RunLogSink
	limiter  ratelimiter.RateLimiterInterface
}

// NewDigestUsecase はDigestUsecaseの新しいインスタンスを生成します。
func NewDigestUsecase(ledger SubscriptionLedger, provider QuoteProvider, notifier Notifier,
	sink RunLogSink, limiter ratelimiter.RateLimiterInterface) *DigestUsecase {
	return &DigestUsecase{
		ledger:   ledger,
		provider: provider,
		notifier: notifier,
		sink:     sink,
		limiter:  limiter,
	}
}

// DispatchDailyUpdates は日次配信を1回実行し、送信に成功した通知数を返します。
//
//  1. 実行開始時刻を記録する。
//  2. 台帳からユニーク銘柄を取得し、Aggregateに渡す。データが空ならno_data_fetchedの
//     サマリを書いて0を返す。
//  3. 購読を持つ全受信者を列挙する。いなければ同様にサマリを書いて0を返す。
//  4. 受信者ごとに射影を計算し、空でなければ通知する。Notifierが成功を報告した場合のみ
//     カウントする。1人の失敗は残りの受信者を妨げない。
//  5. どの経路を通っても、returnの前にちょうど1件の実行サマリを書く。
//
// 台帳の列挙に失敗した場合のみ実行全体のエラーとなります。銘柄リストもユーザーリストも
// 無い部分集約には意味がないためです。その場合でもサマリは書かれます。
func (du *DigestUsecase) DispatchDailyUpdates(ctx context.Context) (int, error) {
	start := time.Now().UTC()

	tickers, err := du.ledger.ListUniqueTickers(ctx)
	if err != nil {
		du.writeSummary(ctx, start, 0, nil, entity.StatusNoDataFetched)
		return 0, fmt.Errorf("list unique tickers: %w", err)
	}

	consolidated := du.Aggregate(ctx, tickers)
	if len(consolidated) == 0 {
		slog.Info("no data fetched, skipping dispatch")
		du.writeSummary(ctx, start, 0, tickers, entity.StatusNoDataFetched)
		return 0, nil
	}

	recipients, err := du.ledger.ListRecipients(ctx)
	if err != nil {
		du.writeSummary(ctx, start, 0, tickers, entity.StatusNoDataFetched)
		return 0, fmt.Errorf("list recipients: %w", err)
	}
	if len(recipients) == 0 {
		slog.Info("no users with active subscriptions found, dispatch complete")
		du.writeSummary(ctx, start, 0, tickers, entity.StatusNoDataFetched)
		return 0, nil
	}

	slog.Info("dispatching daily updates", "recipients", len(recipients))

	sent := 0
	for _, rec := range recipients {
		data := Project(rec, consolidated)
		if len(data) == 0 {
			slog.Warn("skipping recipient: no valid data for subscribed tickers", "email", rec.Email)
			continue
		}

		firstName := rec.FirstName
		if firstName == "" {
			firstName = fallbackFirstName
		}

		if err := du.notifier.Send(ctx, rec.Email, firstName, data); err != nil {
			slog.Error("failed to dispatch email", "email", rec.Email, "error", err)
			continue
		}
		sent++
	}

	slog.Info("daily dispatch completed", "emails_sent", sent)
	du.writeSummary(ctx, start, sent, tickers, entity.StatusSuccess)
	return sent, nil
}

// writeSummary は実行サマリを構築してシンクに書き込みます。
// シンクの失敗は運用上の問題としてログに残すのみで、実行結果には影響させません。
func (du *DigestUsecase) writeSummary(ctx context.Context, start time.Time, sent int, tickers []string, status string) {
	if tickers == nil {
		tickers = []string{}
	}
	summary := entity.RunSummary{
		Date:             start.Format("2006-01-02"),
		StartUTC:         start,
		EndUTC:           time.Now().UTC(),
		EmailsSent:       sent,
		TickersProcessed: tickers,
		Status:           status,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		slog.Error("failed to serialize run summary", "error", err)
		return
	}

	location, err := du.sink.Write(ctx, summary.Key(), data)
	if err != nil {
		slog.Error("failed to store run summary", "key", summary.Key(), "error", err)
		return
	}
	slog.Info("run summary stored", "location", location, "status", status, "emails_sent", sent)
}
