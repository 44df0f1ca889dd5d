// Package handler はsubscriptionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/domain/entity"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/transport/http/dto"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/usecase"
	jwtmw "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/jwt"
)

// SubscriptionUsecase は購読操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, userID uint, ticker string) (*entity.Subscription, error)
	List(ctx context.Context, userID uint) ([]entity.Subscription, error)
	Unsubscribe(ctx context.Context, userID uint, ticker string) (int64, error)
}

// SubscriptionHandler は購読操作のHTTPリクエストを処理します。
type SubscriptionHandler struct {
	subs SubscriptionUsecase
}

// NewSubscriptionHandler はSubscriptionHandlerの新しいインスタンスを生成します。
func NewSubscriptionHandler(subs SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// currentUserID はJWTミドルウェアがコンテキストに設定したユーザーIDを取り出します。
func currentUserID(c *gin.Context) (uint, bool) {
	uid := c.GetUint(jwtmw.ContextUserID)
	return uid, uid != 0
}

// Create は購読作成APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 重複購読は409を返却
// - 成功時は201で作成された購読を返却
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.SubscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("subscribe validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.subs.Subscribe(c.Request.Context(), userID, req.Ticker)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": "already subscribed"})
		case errors.Is(err, usecase.ErrInvalidTicker):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticker"})
		default:
			slog.Error("subscribe failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "subscribe failed"})
		}
		return
	}

	slog.Info("subscription created", "user_id", userID, "ticker", sub.Ticker)
	c.JSON(http.StatusCreated, dto.SubscriptionItem{ID: sub.ID, Ticker: sub.Ticker, CreatedAt: sub.CreatedAt})
}

// List は認証済みユーザーの購読一覧を取得するAPIです。
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	subs, err := h.subs.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list subscriptions failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	out := make([]dto.SubscriptionItem, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubscriptionItem{ID: s.ID, Ticker: s.Ticker, CreatedAt: s.CreatedAt})
	}
	c.JSON(http.StatusOK, out)
}

// Delete は購読解除APIエンドポイントを処理します。
// 該当する購読が存在しない場合は404を返却します。
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ticker := c.Param("ticker")
	count, err := h.subs.Unsubscribe(c.Request.Context(), userID, ticker)
	if err != nil {
		if errors.Is(err, usecase.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			return
		}
		slog.Error("unsubscribe failed", "error", err, "user_id", userID, "ticker", ticker)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unsubscribe failed"})
		return
	}

	slog.Info("subscription deleted", "user_id", userID, "ticker", ticker, "count", count)
	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: count})
}
