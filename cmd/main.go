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
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/alert_dashboard/internal/config"
	v1 "github.com/shenikar/alert_dashboard/internal/handler/http/v1"
	"github.com/shenikar/alert_dashboard/internal/handler/http/web"
	"github.com/shenikar/alert_dashboard/internal/repository"
	"github.com/shenikar/alert_dashboard/internal/service"
	"github.com/shenikar/alert_dashboard/internal/session"
	"github.com/shenikar/alert_dashboard/internal/webhook"
	"github.com/shenikar/alert_dashboard/pkg/logger"
	"github.com/shenikar/alert_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/alert_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/alert_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const sessionSweepInterval = time.Minute

// @title Alert Dashboard API
// @version 1.0
// @description Session-scoped API of the security alert monitoring dashboard.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

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

	// Источник данных
	var source repository.Source = repository.NewStaticRepository()
	if cfg.DataSource == config.DataSourcePostgres {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		source = repository.NewPostgresRepository(dbpool)
	}
	log.WithField("data_source", cfg.DataSource).Info("Dashboard data source selected")

	// Redis: кеш снимков и очередь событий
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		if cfg.CacheTTL > 0 {
			source = repository.NewCachedRepository(source, redisClient, cfg.CacheTTL)
		}
	}

	// Публикация событий дашборда
	var publisher webhook.Publisher = webhook.NopPublisher{}
	switch cfg.EventBus {
	case config.EventBusRedis:
		publisher = webhook.NewRedisPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	case config.EventBusNATS:
		nc, err := webhook.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer nc.Close()
		log.Infof("Successfully connected to NATS at %s", cfg.NATSURL)

		publisher = webhook.NewNATSPublisher(nc, cfg.NATSSubjectPrefix)
	}

	// Хранилище сессий
	sessions := session.NewStore(cfg.SessionTTL, log)
	sessions.Start(ctx, sessionSweepInterval)

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(source, source, sessions, publisher, log, cfg)

	// Инициализация хэндлеров
	apiHandler := v1.NewHandler(dashboardService, log, cfg)
	pageHandler, err := web.NewHandler(dashboardService, log, cfg)
	if err != nil {
		log.Fatalf("Failed to load page templates: %v", err)
	}

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	apiHandler.RegisterRoutes(api)
	pageHandler.RegisterRoutes(router)
	router.Static("/static", "./static")

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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер вебхуков и выселение сессий
	cancel()

	log.Info("Server gracefully stopped")
}
