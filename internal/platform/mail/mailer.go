package mail

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
)

// subject は日次ダイジェストメールの件名です。
const subject = "Your Daily Financial Data Update"

// Mailer はdigestフィーチャーのNotifier実装です。
// メッセージを整形し、実際の送信の代わりに構造化ログへ出力します。
type Mailer struct {
	cfg Config
}

// MailerがNotifierを実装していることをコンパイル時に検証します。
var _ usecase.Notifier = (*Mailer)(nil)

// NewMailer は指定された設定でMailerの新しいインスタンスを生成します。
func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send は1人の受信者向けにダイジェストを整形して送出します。
// 送達が確認できた場合のみnilを返します。
func (m *Mailer) Send(ctx context.Context, recipient, firstName string, data entity.ConsolidatedData) error {
	if recipient == "" {
		return fmt.Errorf("empty recipient address")
	}

	body := FormatMessage(firstName, data)

	slog.Info("mock email dispatch",
		"to", recipient,
		"from", m.cfg.FromAddress,
		"subject", subject,
		"tickers", len(data),
	)
	slog.Debug("email body", "body", body)

	return nil
}

// FormatMessage はダイジェスト本文を組み立てます。
// フェッチに失敗した半分（nil）は N/A として表示されます。
// マップの列挙順は不定なので、本文を決定的にするため銘柄順にソートします。
func FormatMessage(firstName string, data entity.ConsolidatedData) string {
	tickers := make([]string, 0, len(data))
	for t := range data {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nHere is your financial data update for your subscribed tickers:\n\n", firstName)

	for _, ticker := range tickers {
		d := data[ticker]

		name, exchange, industry, webURL := "N/A", "N/A", "N/A", "#"
		if d.Profile != nil {
			name = d.Profile.Name
			exchange = d.Profile.Exchange
			industry = d.Profile.Industry
			webURL = d.Profile.WebURL
		}

		current, high, low := "N/A", "N/A", "N/A"
		if d.Quote != nil {
			current = fmt.Sprintf("%.2f", d.Quote.CurrentPrice)
			high = fmt.Sprintf("%.2f", d.Quote.HighPrice)
			low = fmt.Sprintf("%.2f", d.Quote.LowPrice)
		}

		fmt.Fprintf(&b, "--- %s (%s) ---\n", ticker, name)
		fmt.Fprintf(&b, "Current Price: %s\n", current)
		fmt.Fprintf(&b, "Daily High: %s\n", high)
		fmt.Fprintf(&b, "Daily Low: %s\n", low)
		fmt.Fprintf(&b, "Exchange: %s\n", exchange)
		fmt.Fprintf(&b, "Industry: %s\n", industry)
		fmt.Fprintf(&b, "Website: %s\n", webURL)
		b.WriteString("--------------------------\n\n")
	}

	b.WriteString("To manage your subscriptions, please log into the app.\n\nBest regards,\nThe Financial Pipeline Team")
	return b.String()
}
