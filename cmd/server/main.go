package main

import (
	"net/http"

	"storefront-admin/internal/admin"
	"storefront-admin/internal/config"
	"storefront-admin/internal/db"
	"storefront-admin/internal/editor"
	"storefront-admin/internal/logger"
	"storefront-admin/internal/product"
	"storefront-admin/internal/producttype"
	"storefront-admin/internal/transport"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	typeRepo := producttype.NewRepository(database)
	typeSvc := producttype.NewService(typeRepo)

	adminRepo := admin.NewRepository(database)
	adminSvc := admin.NewService(adminRepo)

	sessions := editor.NewManager(productSvc, typeSvc)

	handler := transport.NewHandler(productSvc, typeSvc, adminSvc, sessions)
	router := transport.NewRouter(handler)

	log.Info("admin server running", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
