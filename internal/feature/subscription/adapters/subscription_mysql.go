// Package adapters はsubscriptionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	digestentity "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
	digestusecase "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/domain/entity"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/usecase"
)

// subscriptionMySQL はSubscriptionRepositoryとSubscriptionLedgerのMySQL実装です。
// 購読の書き込みはsubscriptionフィーチャーが、読み取り（台帳）はdigestフィーチャーが使用します。
type subscriptionMySQL struct {
	db *gorm.DB
}

// 両インターフェースの実装をコンパイル時に検証します。
var (
	_ usecase.SubscriptionRepository   = (*subscriptionMySQL)(nil)
	_ digestusecase.SubscriptionLedger = (*subscriptionMySQL)(nil)
)

// NewSubscriptionMySQL は指定されたgorm.DB接続でsubscriptionMySQLの新しいインスタンスを生成します。
func NewSubscriptionMySQL(db *gorm.DB) *subscriptionMySQL {
	return &subscriptionMySQL{db: db}
}

// Create は購読をデータベースに追加します。
// 同じ(ユーザー, 銘柄)の購読が既に存在する場合、usecase.ErrAlreadySubscribedを返します。
func (r *subscriptionMySQL) Create(ctx context.Context, sub *entity.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadySubscribed
		}
		// SQLite（テスト用）の重複エラーも同じセンチネルに変換する
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

// ListByUser は指定されたユーザーの全購読を返します。
func (r *subscriptionMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Subscription, error) {
	var subs []entity.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ticker ASC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteByUserAndTicker は指定されたユーザーと銘柄の購読を削除し、削除件数を返します。
func (r *subscriptionMySQL) DeleteByUserAndTicker(ctx context.Context, userID uint, ticker string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND ticker = ?", userID, ticker).
		Delete(&entity.Subscription{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ListUniqueTickers は全ユーザーを横断した購読銘柄のユニークな集合を返します。
func (r *subscriptionMySQL) ListUniqueTickers(ctx context.Context) ([]string, error) {
	var tickers []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Subscription{}).
		Distinct().
		Order("ticker ASC").
		Pluck("ticker", &tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}

// recipientRow はusersとsubscriptionsを結合した1行分の読み取り用構造体です。
type recipientRow struct {
	UserID    uint
	FirstName string
	Email     string
	Ticker    string
}

// ListRecipients は1件以上の購読を持つ全ユーザーを、購読銘柄リスト付きで返します。
// ユーザーごとの追加クエリを避けるため、単一のJOINで取得してアプリケーション側でグループ化します。
func (r *subscriptionMySQL) ListRecipients(ctx context.Context) ([]digestentity.Recipient, error) {
	var rows []recipientRow
	if err := r.db.WithContext(ctx).
		Table("subscriptions").
		Select("subscriptions.user_id AS user_id, users.first_name AS first_name, users.email AS email, subscriptions.ticker AS ticker").
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Order("subscriptions.user_id ASC, subscriptions.ticker ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var recipients []digestentity.Recipient
	byUser := map[uint]int{} // user_id -> recipientsのインデックス
	for _, row := range rows {
		idx, ok := byUser[row.UserID]
		if !ok {
			recipients = append(recipients, digestentity.Recipient{
				UserID:    row.UserID,
				FirstName: row.FirstName,
				Email:     row.Email,
			})
			idx = len(recipients) - 1
			byUser[row.UserID] = idx
		}
		recipients[idx].Tickers = append(recipients[idx].Tickers, row.Ticker)
	}
	return recipients, nil
}
