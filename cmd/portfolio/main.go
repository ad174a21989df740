package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btcfolio/btcfolio/internal/pkg/config"
	"github.com/btcfolio/btcfolio/internal/pkg/database"
	"github.com/btcfolio/btcfolio/internal/pkg/health"
	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/middleware"
	nsqpkg "github.com/btcfolio/btcfolio/internal/pkg/nsq"
	"github.com/btcfolio/btcfolio/internal/pkg/server"
	"github.com/btcfolio/btcfolio/services/portfolio/gateway"
	"github.com/btcfolio/btcfolio/services/portfolio/handler"
	httpHandler "github.com/btcfolio/btcfolio/services/portfolio/handler/http"
	"github.com/btcfolio/btcfolio/services/portfolio/pricefeed"
	"github.com/btcfolio/btcfolio/services/portfolio/repository"
	"github.com/btcfolio/btcfolio/services/portfolio/usecase"
)

func main() {
	appName := "portfolio-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NSQ producer when enabled
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
	}

	// Initialize repository
	transactionRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway and the background price watcher
	portfolioGW := gateway.NewPortfolioGW(configs, producer)
	watcher := pricefeed.NewWatcher(portfolioGW, configs.PriceFeed)
	watcher.Start()

	// Initialize usecase
	portfolioUC := usecase.NewPortfolioUC(transactionRepo, portfolioGW, watcher, configs)

	// Initialize handlers
	portfolioHandler := httpHandler.NewPortfolioHandler(portfolioUC)
	Handler := handler.NewHandler(portfolioHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)

	srv.OnShutdown(func(ctx context.Context) error {
		return watcher.Stop(ctx)
	})
	if producer != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}
	srv.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
