package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/adapters/out/notification"
	pgadapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	uowFactory := openStorage(configs, logger)

	notifier, closeNotifier := newNotifier(configs, logger)
	defer func() {
		if err := closeNotifier.Close(); err != nil {
			logger.Error("Failed to close notifier", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := cmd.NewCompositionRoot(configs, uowFactory, notifier, registry, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := newWebServer(app, registry, logger)
	go func() {
		logger.Info("HTTP server starting", "port", configs.HTTPPort, "storage", configs.Storage)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	app.Dispatcher().Wait()
}

func openStorage(configs cmd.Config, logger *slog.Logger) ports.UnitOfWorkFactory {
	if configs.Storage == cmd.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = pgadapter.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return pgadapter.NewGormUnitOfWorkFactory(db)
}

func newNotifier(configs cmd.Config, logger *slog.Logger) (ports.NotificationService, io.Closer) {
	if len(configs.KafkaBrokers) == 0 {
		return notification.NewLogNotifier(logger), io.NopCloser(nil)
	}
	kafka := notification.NewKafkaNotifier(configs.KafkaBrokers, configs.KafkaTopic, configs.KafkaWriteTimeout, logger)
	return kafka, kafka
}

func newWebServer(app *cmd.CompositionRoot, registry *prometheus.Registry, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpadapter.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.CreateHTTPServer().RegisterRoutes(e)
	return e
}
