package usecase

import (
	"context"
	"strings"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/domain/entity"
)

// SubscriptionRepository は購読エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type SubscriptionRepository interface {
	// Create は新しい購読をストレージに永続化します。
	// 同じ(ユーザー, 銘柄)の購読が既に存在する場合、ErrAlreadySubscribedを返します。
	Create(ctx context.Context, sub *entity.Subscription) error

	// ListByUser は指定されたユーザーの全購読を返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Subscription, error)

	// DeleteByUserAndTicker は指定されたユーザーと銘柄の購読を削除し、削除件数を返します。
	DeleteByUserAndTicker(ctx context.Context, userID uint, ticker string) (int64, error)
}

// subscriptionUsecase は購読管理のビジネスロジックを実装します。
type subscriptionUsecase struct {
	subs SubscriptionRepository
}

// NewSubscriptionUsecase はsubscriptionUsecaseの新しいインスタンスを生成します。
func NewSubscriptionUsecase(subs SubscriptionRepository) *subscriptionUsecase {
	return &subscriptionUsecase{subs: subs}
}

// normalizeTicker は銘柄コードを正規化します（前後空白の除去と大文字化）。
func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Subscribe は指定されたユーザーの銘柄購読を作成します。
// 銘柄は保存前に正規化されます。重複購読はErrAlreadySubscribedになります。
func (su *subscriptionUsecase) Subscribe(ctx context.Context, userID uint, ticker string) (*entity.Subscription, error) {
	ticker = normalizeTicker(ticker)
	if ticker == "" {
		return nil, ErrInvalidTicker
	}

	sub := &entity.Subscription{UserID: userID, Ticker: ticker}
	if err := su.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List は指定されたユーザーの購読一覧を返します。
func (su *subscriptionUsecase) List(ctx context.Context, userID uint) ([]entity.Subscription, error) {
	return su.subs.ListByUser(ctx, userID)
}

// Unsubscribe は指定されたユーザーの銘柄購読を解除し、削除件数を返します。
// 該当する購読が存在しない場合はErrSubscriptionNotFoundを返します。
func (su *subscriptionUsecase) Unsubscribe(ctx context.Context, userID uint, ticker string) (int64, error) {
	ticker = normalizeTicker(ticker)
	count, err := su.subs.DeleteByUserAndTicker(ctx, userID, ticker)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrSubscriptionNotFound
	}
	return count, nil
}
