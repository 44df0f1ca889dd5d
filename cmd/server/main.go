package main

import (
	"log"
	"os"
	"time"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/app/router"
	authadapters "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/auth/adapters"
	authhandler "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/auth/transport/handler"
	authusecase "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/auth/usecase"
	subadapters "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/adapters"
	subhandler "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/transport/handler"
	subusecase "github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/subscription/usecase"
	infradb "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/db"
	jwtmw "github.com/rushilshah11/automated-financial-data-pipeline/internal/platform/jwt"
)

const tokenExpiration = 15 * time.Minute

func main() {
	// db
	db := infradb.OpenDB()

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	subRepo := subadapters.NewSubscriptionMySQL(db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, tokenExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	subUC := subusecase.NewSubscriptionUsecase(subRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	subH := subhandler.NewSubscriptionHandler(subUC)

	// ルータ生成
	router := router.NewRouter(authH, subH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
