package main

// @title Itinerary Microservice API
// @version 1.0.0
// @description Микросервис рекомендаций многодневных маршрутов поездок. Строит маршрут по предпочтениям пользователя: скоринг достопримечательностей обученными моделями, контекстная корректировка по погоде и трафику, кластеризация, маршрутизация, отбор по бюджету, раскладка по дням и подбор отелей.
// @description
// @description Основные возможности:
// @description - Построение многодневного маршрута с бюджетными ограничениями
// @description - Предсказание суммарного времени и бюджета поездки
// @description - Подбор отелей вокруг центра маршрута и по дням
// @description - Оценка риска локаций (скор, категория, факторы, рекомендации)

// @contact.name API Support
// @contact.email support@itinerary-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/itinerary-microservice/docs"
	"github.com/itinerary-microservice/internal/config"
	httpDelivery "github.com/itinerary-microservice/internal/delivery/http"
	"github.com/itinerary-microservice/internal/delivery/http/handler"
	"github.com/itinerary-microservice/internal/infrastructure/mlservice"
	"github.com/itinerary-microservice/internal/pkg/logger"
	"github.com/itinerary-microservice/internal/repository/cache"
	"github.com/itinerary-microservice/internal/repository/postgres"
	"github.com/itinerary-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (attraction and hotel catalogs)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	attractionRepo := postgres.NewAttractionRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	modelClient := mlservice.NewClient(&cfg.ModelService, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	itineraryUC := usecase.NewItineraryUseCase(
		attractionRepo,
		hotelRepo,
		modelClient,
		cacheRepo,
		cfg.Planner,
		cfg.Cache.ItineraryCacheTTL,
		log,
	)

	riskUC := usecase.NewRiskUseCase(
		modelClient,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, log)
	riskHandler := handler.NewRiskHandler(riskUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		itineraryHandler,
		riskHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
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
