package usecase

import (
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
)

// Project は統合マップを1人の受信者の購読銘柄に絞り込みます。
// 結果は受信者の購読セットと統合マップのキーの積集合です。
// フェッチに失敗して統合マップに存在しない銘柄は黙って除外されます。
// 純粋関数であり、I/Oも入力の変更も行いません。
func Project(rec entity.Recipient, consolidated entity.ConsolidatedData) entity.ConsolidatedData {
	out := make(entity.ConsolidatedData, len(rec.Tickers))
	for _, ticker := range rec.Tickers {
		if data, ok := consolidated[ticker]; ok {
			out[ticker] = data
		}
	}
	return out
}
