package main

import (
	"context"
	"fmt"
	"time"

	"paridhan/internal/auth"
	"paridhan/internal/config"
	"paridhan/internal/domain/model"
	"paridhan/internal/infra/db"
	infraRepo "paridhan/internal/infra/repository"
	"paridhan/internal/logger"
	repo "paridhan/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//開発用のデータ投入。商品とデモユーザーを作って、
//そのままAPIを叩けるトークンを出力する。

const bcryptCost = 12

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.GoEnv)
	defer logger.Sync()

	gormDB, err := db.Connect()
	if err != nil {
		logger.L().Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Favorite{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		logger.L().Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)

	//デモ商品
	products := []model.Product{
		{Name: "Kurta Classic", Price: 1800, Image: "https://img.example.com/kurta-classic.jpg"},
		{Name: "Silk Saree", Price: 5200, Image: "https://img.example.com/silk-saree.jpg"},
		{Name: "Denim Jacket", Price: 3400, Image: "https://img.example.com/denim-jacket.jpg"},
	}
	for i := range products {
		if err := gormDB.WithContext(ctx).Create(&products[i]).Error; err != nil {
			logger.L().Fatal("seed product failed", zap.Error(err))
		}
	}

	//デモユーザー（既存ならそのまま使う）
	user, err := userRepo.FindByEmail(ctx, "demo@paridhan.dev")
	if err == repo.ErrNotFound {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo-password"), bcryptCost)
		if hashErr != nil {
			logger.L().Fatal("hash failed", zap.Error(hashErr))
		}

		u := model.User{
			Name:         "Demo User",
			Email:        "demo@paridhan.dev",
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			logger.L().Fatal("seed user failed", zap.Error(err))
		}
		user = u
	} else if err != nil {
		logger.L().Fatal("find user failed", zap.Error(err))
	}

	//カートに1品入れておく
	if err := cartRepo.Upsert(ctx, user.ID, products[0].ID, 2); err != nil {
		logger.L().Fatal("seed cart failed", zap.Error(err))
	}

	//手元確認用トークン
	token, err := auth.Issue(user.ID, []byte(cfg.JWTSecret), 24*time.Hour, time.Now())
	if err != nil {
		logger.L().Fatal("issue token failed", zap.Error(err))
	}

	all, err := productRepo.ListAll(ctx)
	if err != nil {
		logger.L().Fatal("list products failed", zap.Error(err))
	}

	logger.L().Info("seeded", zap.Int("products", len(all)), zap.Int64("user_id", user.ID))
	fmt.Printf("Authorization: Bearer %s\n", token)
}
