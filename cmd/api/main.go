package main

import (
	"paridhan/internal/config"
	"paridhan/internal/domain/model"
	"paridhan/internal/handler"
	"paridhan/internal/infra/db"
	infraRepo "paridhan/internal/infra/repository"
	"paridhan/internal/logger"
	"paridhan/internal/server"
	"paridhan/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.GoEnv)
	defer logger.Sync()

	//DB接続
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

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, cfg.MissingProductPolicy)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg, productH, orderH)

	addr := ":" + cfg.Port
	logger.L().Info("server starting", zap.String("addr", addr))

	if err := server.Start(e, addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
