package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/blgguy/safetransport/internal/config"
	"github.com/blgguy/safetransport/internal/crypto"
	v1 "github.com/blgguy/safetransport/internal/handler/http/v1"
	"github.com/blgguy/safetransport/internal/repository"
	"github.com/blgguy/safetransport/internal/service"
	"github.com/blgguy/safetransport/internal/webhook"
	"github.com/blgguy/safetransport/pkg/logger"
	"github.com/blgguy/safetransport/pkg/postgres"
	redisclient "github.com/blgguy/safetransport/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/blgguy/safetransport/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SafeTransport API
// @version 1.0
// @description Anonymous transit safety incident reporting and alerting API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")
	store := postgres.NewStore(dbpool)

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация криптосервиса
	key, err := cfg.EncryptionKey()
	if err != nil {
		log.Fatalf("Invalid encryption key: %v", err)
	}
	cryptoSvc, err := crypto.NewService(key, cfg.AnonymousSalt)
	if err != nil {
		log.Fatalf("Failed to init crypto service: %v", err)
	}
	csrfManager := crypto.NewCSRFManager(crypto.NewRedisTokenStore(redisClient), cfg.CSRFLifetime)

	// Инициализация издателя событий оповещений
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(store, redisClient)
	alertRepo := repository.NewAlertRepository(store, redisClient)
	auditRepo := repository.NewAuditRepository(store)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, cryptoSvc, log, alertPublisher)
	proximityService := service.NewProximityService(reportRepo, alertRepo, log)
	lifecycleService := service.NewLifecycleService(reportRepo, alertRepo, auditRepo, log, alertPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, proximityService, lifecycleService, csrfManager, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, v1.RateLimitMiddleware(redisClient, cfg, log))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
