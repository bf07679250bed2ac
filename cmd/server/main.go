package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/config"
	"github.com/kelvinmfon2025/book-api/internal/handler"
	"github.com/kelvinmfon2025/book-api/internal/infrastructure/database"
	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/metrics"
	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/service"
	"github.com/kelvinmfon2025/book-api/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.MigrationsPath, cfg.DatabaseURL()); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Initialize repositories
	bookRepo := repository.NewPostgresBookRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)
	reservationRepo := repository.NewPostgresReservationRepository(pool)
	tx := repository.NewPostgresTransactor(pool)

	// Start background collectors
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	loanStatsCollector := metrics.NewLoanStatsCollector(userRepo)
	loanStatsCollector.Start(cfg.LoanStatsInterval)
	defer loanStatsCollector.Stop()

	// Notifications are delivered asynchronously by a worker pool
	dispatcher := notification.NewDispatcher(notification.NewLogSender(), cfg.NotificationWorkers, cfg.NotificationQueueSize)

	// Initialize services
	v := validator.NewValidator()
	lendingService := service.NewLendingService(bookRepo, userRepo, reservationRepo, tx, dispatcher, service.LendingRules{
		LoanPeriod:     cfg.LoanPeriod,
		MaxBorrowLimit: cfg.MaxBorrowLimit,
		ReservationTTL: cfg.ReservationTTL,
	})
	catalogService := service.NewCatalogService(bookRepo, userRepo, reservationRepo, tx, v)
	exportService := service.NewExportService(bookRepo)
	membershipService := service.NewMembershipService(userRepo, tx, v, dispatcher, cfg.VerificationCodeTTL)

	sweeper := service.NewReservationSweeper(lendingService)
	if cfg.ReservationTTL > 0 {
		sweeper.Start(cfg.ReservationSweepInterval)
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Handlers{
		Health:  handler.NewHealthHandler(pool, metrics.PgxPoolStats(pool), version),
		Catalog: handler.NewCatalogHandler(catalogService),
		Lending: handler.NewLendingHandler(lendingService),
		Users:   handler.NewUserHandler(membershipService),
		Export:  handler.NewExportHandler(exportService),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop background work first so nothing new is queued during shutdown
	logger.Info("Stopping reservation sweeper")
	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Drain notifications queued by in-flight requests
	logger.Info("Closing notification dispatcher")
	dispatcher.Close()

	logger.Info("Server exited")
}
