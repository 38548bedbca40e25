package main

import (
	"context"
	"log"

	"luxbag-tracker/internal/core/cache"
	"luxbag-tracker/internal/core/config"
	"luxbag-tracker/internal/core/logger"
	"luxbag-tracker/internal/core/scheduler"
	"luxbag-tracker/internal/core/server"
	catalogadapter "luxbag-tracker/internal/features/catalog/adapters"
	orderadapter "luxbag-tracker/internal/features/orders/adapters"
	orderhandler "luxbag-tracker/internal/features/orders/handler"
	orderservice "luxbag-tracker/internal/features/orders/service"
	storedomain "luxbag-tracker/internal/features/stores/domain"
	storehandler "luxbag-tracker/internal/features/stores/handler"
	storeservice "luxbag-tracker/internal/features/stores/service"
	trackinghandler "luxbag-tracker/internal/features/tracking/handler"
	trackingservice "luxbag-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title LuxBag Tracker API
// @version 1.0
// @description Order, boutique, and simulated delivery-tracking API.
// @contact.name API Support
// @contact.email support@luxbag.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Catalog Adapter and run Health Check
	catalog := catalogadapter.NewHTTPCatalogAdapter(cfg.Catalog)
	if err := catalog.HealthCheck(context.Background()); err != nil {
		l.Fatal("Catalog Health Check Failed", zap.Error(err))
	}
	l.Info("Catalog connection verified")

	// Initialize Order Store
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	orderRepo := orderadapter.NewRedisOrderRepository(redisCache)
	orderService := orderservice.NewOrderService(orderRepo)
	orderHandler := orderhandler.NewOrderHandler(orderService, catalog)

	// Initialize Tracking Session
	session := trackingservice.NewSession(orderService, scheduler.NewTickerScheduler(), cfg.Simulation)
	defer session.Stop()
	trackingHdl := trackinghandler.NewTrackingHandler(session)

	// Initialize Store Locator
	storeHdl := storehandler.NewStoreHandler(storeservice.NewStoreService(storedomain.Seed()))

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/orders", orderHandler.CreateOrder)
	srv.App.Get("/orders", orderHandler.ListOrders)
	srv.App.Get("/orders/active", orderHandler.GetActiveDelivery)
	srv.App.Get("/orders/:id", orderHandler.GetOrder)
	srv.App.Post("/orders/:id/pickup", orderHandler.ConfirmPickup)
	srv.App.Post("/tracking/session", trackingHdl.StartSession)
	srv.App.Delete("/tracking/session", trackingHdl.StopSession)
	srv.App.Get("/tracking/snapshot", trackingHdl.GetSnapshot)
	srv.App.Get("/stores", storeHdl.ListStores)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
