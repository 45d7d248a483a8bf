package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/complaint_analytics/internal/config"
	v1 "github.com/shenikar/complaint_analytics/internal/handler/http/v1"
	"github.com/shenikar/complaint_analytics/internal/repository"
	"github.com/shenikar/complaint_analytics/internal/service"
	"github.com/shenikar/complaint_analytics/internal/webhook"
	"github.com/shenikar/complaint_analytics/pkg/logger"
	"github.com/shenikar/complaint_analytics/pkg/postgres"
	redisclient "github.com/shenikar/complaint_analytics/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/complaint_analytics/docs"
)

// @title Complaint Analytics API
// @version 1.0
// @description Geospatial analytics and SLA monitoring over citizen complaints.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	applied, err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.WithField("applied", applied).Info("Database migrations are up to date")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозиториев
	complaintRepo := repository.NewComplaintRepository(dbpool)
	slaConfigRepo := repository.NewSLAConfigRepository(dbpool, redisClient, cfg.SLAConfigCacheTTL)

	// Инициализация сервисов
	analyticsService := service.NewAnalyticsService(complaintRepo, log, cfg.Analytics)
	slaService := service.NewSLAService(complaintRepo, slaConfigRepo, log)
	reportPublisher := webhook.NewRedisReportPublisher(redisClient)
	reportService := service.NewReportService(analyticsService, slaService, reportPublisher, log)

	// Инициализация и запуск воркера доставки отчетов
	reportWorker := webhook.NewReportWorker(redisClient, reportService, log, webhook.WorkerConfig{
		URL:        cfg.WebhookURL,
		Secret:     cfg.WebhookSecret,
		Timeout:    cfg.WebhookTimeout,
		MaxRetries: cfg.WebhookMaxRetries,
		BaseDelay:  cfg.WebhookBaseDelay,
	})
	reportWorker.Start(ctx)

	// Инициализация хэндлеров и роутера
	handler := v1.NewHandler(analyticsService, slaService, reportService, log, cfg)
	router := v1.NewRouter(handler)

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем завершения текущей доставки
	cancel()
	select {
	case <-reportWorker.Done():
		log.Info("Report worker stopped")
	case <-shutdownCtx.Done():
		log.Warn("Report worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
