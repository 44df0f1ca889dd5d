// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/auth/transport/handler"
	subhandler "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/transport/handler"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/http/handler"
	jwtmw "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, subHandler *subhandler.SubscriptionHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザフロントエンドからのアクセスを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	subs := r.Group("/subscriptions")
	subs.Use(jwtmw.AuthRequired())
	{
		subs.POST("", subHandler.Create)
		subs.GET("", subHandler.List)
		subs.DELETE("/:ticker", subHandler.Delete)
	}

	return r
}
