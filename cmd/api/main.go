package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/database"
	"github.com/simonindia/safety-api/internal/http/handler"
	"github.com/simonindia/safety-api/internal/http/middleware"
	"github.com/simonindia/safety-api/internal/http/router"
	"github.com/simonindia/safety-api/internal/logger"
	"github.com/simonindia/safety-api/internal/repository"
	"github.com/simonindia/safety-api/internal/service"
	"github.com/simonindia/safety-api/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := database.Seed(db, &cfg.Bootstrap, log); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize blob storage
	blobs, err := storage.NewBlobStore(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized",
		zap.Bool("object_storage", cfg.Storage.ObjectStorageEnabled()),
		zap.String("local_path", cfg.Storage.LocalPath),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	subContractorRepo := repository.NewSubContractorRepository(db)
	observationRepo := repository.NewObservationRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, observationRepo, log)
	subContractorService := service.NewSubContractorService(subContractorRepo, projectRepo, observationRepo, log)
	observationService := service.NewObservationService(observationRepo, blobs, log)
	dataService := service.NewDataService(projectRepo, observationRepo, subContractorRepo)
	exportService := service.NewExportService(observationRepo, &cfg.Storage, &cfg.Export)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, log)
	dataHandler := handler.NewDataHandler(dataService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	subContractorHandler := handler.NewSubContractorHandler(subContractorService, log)
	observationHandler := handler.NewObservationHandler(observationService, log)
	exportHandler := handler.NewExportHandler(exportService, log)
	uploadHandler := handler.NewUploadHandler(blobs, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		authHandler,
		dataHandler,
		projectHandler,
		subContractorHandler,
		observationHandler,
		exportHandler,
		uploadHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
