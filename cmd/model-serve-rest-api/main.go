// cmd/model-serve-rest-api/main.go
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

	v1 "model_serving_service/internal/api/rest/v1"
	"model_serving_service/internal/app"
	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/infrastructure/modelstore"
	"model_serving_service/internal/infrastructure/persistence"
	"model_serving_service/internal/infrastructure/persistence/models"
	"model_serving_service/internal/pkg/config"
	"model_serving_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	settings, err := config.NewSettingsFromEnv()
	if err != nil {
		return fmt.Errorf("failed to initialize settings: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(config.NewLoggerSettingsFrom(settings)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(settings, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(settings, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
}

type appServices struct {
	prediction         serving.PredictionService
	predictionMetadata serving.PredictionMetadataService
	providerCatalog    providers.CatalogService
	settings           *config.Settings
}

// initializeDependencies sets up all application components
func initializeDependencies(settings *config.Settings, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	dbSettings, err := config.NewDatabaseSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database settings: %w", err)
	}

	db, err := persistence.NewDBConnection(*dbSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.PredictionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	predictionRepo, err := persistence.NewGormPredictionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction repository: %w", err)
	}

	// Load the model artifact. A failed load keeps the service up in a
	// degraded state; /predictions then answers 503 until a model is present.
	artifact := loadModelArtifact(settings, log)

	// Initialize services
	services, err := initializeApplicationServices(settings, artifact, predictionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
	}, nil
}

// loadModelArtifact reads the configured model artifact, returning nil when it
// cannot be loaded
func loadModelArtifact(settings *config.Settings, log logger.Logger) *serving.ModelArtifact {
	store, err := modelstore.NewGobModelStore(log)
	if err != nil {
		log.Warn("Failed to create model store: ", err)
		return nil
	}

	artifact, err := store.Load(settings.ModelPath)
	if err != nil {
		log.Warn(fmt.Sprintf("Failed to load model from %s: %v; continuing without a model", settings.ModelPath, err))
		return nil
	}

	log.Info(fmt.Sprintf("Loaded model %s@%s (%s)", artifact.Name, artifact.Version, artifact.TaskType))
	return artifact
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	settings *config.Settings,
	artifact *serving.ModelArtifact,
	predictionRepo serving.PredictionRepository,
	log logger.Logger,
) (*appServices, error) {
	predictionService, err := app.NewPredictionService(artifact, predictionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction service: %w", err)
	}

	predictionMetadataService, err := app.NewPredictionMetadataService(predictionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction metadata service: %w", err)
	}

	providerCatalogService, err := app.NewProviderCatalogService(settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider catalog service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		prediction:         predictionService,
		predictionMetadata: predictionMetadataService,
		providerCatalog:    providerCatalogService,
		settings:           settings,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(settings *config.Settings, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.prediction,
		deps.services.predictionMetadata,
		deps.services.providerCatalog,
		deps.services.settings,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
