package main

// @title Toulouse House Price API
// @version 1.0.0
// @description Оценка цены жилья в Тулузе по площади Carrez, числу комнат, координатам и наличию участка.
// @description
// @description Основные возможности:
// @description - Оценка цены одного объекта с вилкой ± MAE модели
// @description - Пакетная оценка до 100 объектов
// @description - Поиск ближайшей станции метро

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/house-price-service/docs"
	"github.com/house-price-service/internal/config"
	httpDelivery "github.com/house-price-service/internal/delivery/http"
	"github.com/house-price-service/internal/delivery/http/handler"
	"github.com/house-price-service/internal/infrastructure/model"
	"github.com/house-price-service/internal/pkg/logger"
	"github.com/house-price-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "house-price-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Toulouse House Price API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("model_backend", cfg.Model.Backend),
	)

	// 3. Load model. Без модели сервис продолжает работать и отвечает 503.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	bundle, err := model.Load(ctx, &cfg.Model, log)
	cancel()
	if err != nil {
		log.Error("Failed to load model, predictions are unavailable", zap.Error(err))
		bundle = model.Unavailable()
	}

	// 4. Initialize Use Cases
	locator := usecase.NewToulouseLocator()
	predictionUC := usecase.NewPredictionUseCase(bundle, locator, log, cfg.Prediction)

	log.Info("Use cases initialized",
		zap.Int("stations", len(locator.Stations())),
		zap.Int("batch_limit", cfg.Prediction.BatchLimit))

	// 5. Initialize HTTP Handlers
	predictionHandler := handler.NewPredictionHandler(predictionUC, log)
	stationHandler := handler.NewStationHandler(locator, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		predictionHandler,
		stationHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
