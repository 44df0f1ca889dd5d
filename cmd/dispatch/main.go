package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/app/di"
	digestusecase "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
	subadapters "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/adapters"
	infradb "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/db"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/mail"
	infraredis "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/redis"
	"github.com/rushilshah11/automated-financial-data-pipeline/internal/shared/ratelimiter"
)

const (
	// Finnhub無料プランの上限は60リクエスト/分。少し余裕を持たせる。
	providerRateLimit = 55

	// 1回の配信実行全体のタイムアウト
	dispatchTimeout = 5 * time.Minute
)

func main() {
	db := infradb.OpenDB()

	// Redis（実行サマリの保存先。無ければファイルにフォールバック）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to file-based run logs.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	ledger := subadapters.NewSubscriptionMySQL(db)
	provider := di.NewQuoteProvider()
	notifier := mail.NewMailer(mail.LoadConfig())
	sink := di.NewRunLogSink(rdb)
	limiter := ratelimiter.NewRateLimiter(providerRateLimit, time.Minute)

	uc := digestusecase.NewDigestUsecase(ledger, provider, notifier, sink, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	sent, err := uc.DispatchDailyUpdates(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("emails sent: %d", sent)
}
