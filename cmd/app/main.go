package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
	"ordering/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err = db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var publisher ports.OrderEventPublisher
	if configs.KafkaEnabled() {
		writer, writerErr := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
		if writerErr != nil {
			log.Fatalf("failed to configure kafka: %v", writerErr)
		}
		producer := kafka.NewOrderChangedProducer(writer)
		defer func() {
			if closeErr := producer.Close(); closeErr != nil {
				logger.Error("failed to close kafka producer", "error", closeErr)
			}
		}()
		publisher = producer
	} else {
		logger.Warn("kafka is not configured, order changes will not be published")
	}

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpadapter.LoadAPIDoc()
	if err != nil {
		log.Fatalf("failed to load api doc: %v", err)
	}

	e := httpadapter.NewEcho(app.CreateHTTPServer(), doc, httpadapter.NewMetrics())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
