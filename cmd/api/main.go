package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"task-board-api/internal/client"
	"task-board-api/internal/config"
	"task-board-api/internal/database"
	"task-board-api/internal/job"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/router"
	"task-board-api/internal/service"
	"task-board-api/internal/worker"
	"task-board-api/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Task Board Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (retried in background on failure so the pod stays alive)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.New()
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		defer close(database.StartDBStatsCollector(db, m))
	}

	// Redis is optional; the rule cache degrades to repository lookups without it
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Failed to connect to redis, workflow rule cache disabled", zap.Error(err))
	}
	ruleCache := service.NewRuleCache(database.GetRedis(), logger)

	// Notification client (no-op when no base URL is configured)
	var notifier service.Notifier
	if cfg.Notifier.BaseURL != "" {
		notifier = client.NewNotificationClient(cfg.Notifier.BaseURL, cfg.Notifier.APIKey,
			cfg.Notifier.Timeout, logger, m)
		logger.Info("Notification client initialized", zap.String("base_url", cfg.Notifier.BaseURL))
	} else {
		notifier = client.NewNoOpNotificationClient()
		logger.Warn("Notification base URL not configured, notifications disabled")
	}

	// Workflow engine and its worker pool
	engine := service.NewWorkflowEngine(
		repository.NewWorkflowRepository(db),
		repository.NewTaskRepository(db),
		repository.NewLabelRepository(db),
		repository.NewColumnRepository(db),
		notifier,
		ruleCache,
		m,
		logger,
	)
	dispatcher := worker.NewDispatcher(engine, cfg.Workflow.QueueSize, cfg.Workflow.Workers, m, logger)
	dispatcher.Start()
	defer dispatcher.Stop()

	// Websocket hub for board event fan-out
	hub := ws.NewHub(logger)

	// Periodic board/task gauge refresh
	if db != nil {
		statsJob := job.NewStatsJob(db, m, logger)
		if err := statsJob.Start(); err != nil {
			logger.Warn("Failed to start stats job", zap.Error(err))
		} else {
			defer statsJob.Stop()
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        m,
		Notifier:       notifier,
		EventQueue:     dispatcher,
		RuleCache:      ruleCache,
		Hub:            hub,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Task Board Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
