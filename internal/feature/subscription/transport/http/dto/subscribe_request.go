// Package dto はsubscriptionフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SubscribeReq は/subscriptionsエンドポイントへのPOSTリクエストボディを表します。
type SubscribeReq struct {
	Ticker string `json:"ticker" binding:"required,max=10"`
}
