package main

import (
	"context"

	"kreps/internal/catalog"
	"kreps/internal/config"
	"kreps/internal/domain/model"
	"kreps/internal/handler"
	"kreps/internal/infra/db"
	infraRepo "kreps/internal/infra/repository"
	"kreps/internal/server"
	"kreps/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using environment as is")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("connect db")
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Stock{},
		&model.StockAdjustment{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logrus.WithError(err).Fatal("migrate")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	stockRepo := infraRepo.NewStockGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	idGen := &uuidGenerator{}

	//初回起動時はメニューを投入
	if err := catalog.SeedProducts(context.Background(), productRepo, stockRepo, uuid.NewString); err != nil {
		logrus.WithError(err).Fatal("seed products")
	}

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(txManager, idGen)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo)
	productUC := usecase.NewProductUsecase(productRepo, stockRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, stockRepo, idGen)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)
	adminOrderH := handler.NewAdminOrderHandler(adminOrderUC, orderUC)
	adminProductH := handler.NewAdminProductHandler(adminProductUC)

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, productH, orderH, adminOrderH, adminProductH)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.GoEnv}).Info("kreps api started")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
