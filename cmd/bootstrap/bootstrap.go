package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kist-clinic-backend/config"
	deliveryHttp "kist-clinic-backend/internal/delivery/http"
	"kist-clinic-backend/internal/delivery/http/handler"
	"kist-clinic-backend/internal/delivery/http/middleware"
	"kist-clinic-backend/internal/infrastructure/cache"
	"kist-clinic-backend/internal/infrastructure/database"
	"kist-clinic-backend/internal/infrastructure/storage"
	"kist-clinic-backend/internal/repository"
	"kist-clinic-backend/internal/service"
	"kist-clinic-backend/internal/usecase"
	"kist-clinic-backend/pkg/jwt"
	"kist-clinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Blobs       *storage.BlobStore
	Server      *http.Server
	Retention   *service.RetentionService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize blob storage
	app.Blobs = storage.NewOSBlobStore(cfg.Storage.MediaRoot)

	// Initialize all layers
	app.initialize()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires every layer and builds the HTTP server plus the
// retention service used by the purge command.
func (app *App) initialize() {
	cfg := app.Config
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository(app.DB)
	appointmentRepo := repository.NewAppointmentRepository(app.DB)
	labTestRepo := repository.NewLaboratoryTestRepository(app.DB)
	orderRepo := repository.NewPharmacyOrderRepository(app.DB)
	medicineRepo := repository.NewMedicineRepository(app.DB)
	recordRepo := repository.NewMedicalRecordRepository(app.DB)
	auditRepo := repository.NewAuditLogRepository(app.DB)

	// Services
	auditService := service.NewAuditService(log, auditRepo)
	remover := service.NewMedicalRecordRemover(recordRepo, app.Blobs)
	mailer := service.NewSMTPMailer(cfg.SMTP)
	app.Retention = service.NewRetentionService(log, recordRepo, remover, auditService, cfg.Retention.MedicalRecordMaxAge)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, app.RedisClient, mailer, auditService, cfg.App.FrontendURL)
	userUsecase := usecase.NewUserUsecase(log, userRepo, app.Blobs, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, auditService)
	labTestUsecase := usecase.NewLaboratoryTestUsecase(log, labTestRepo, auditService)
	orderUsecase := usecase.NewPharmacyOrderUsecase(log, orderRepo, auditService)
	medicineUsecase := usecase.NewMedicineUsecase(log, medicineRepo, auditService)
	recordUsecase := usecase.NewMedicalRecordUsecase(log, recordRepo, app.Blobs, remover, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	labTestHandler := handler.NewLaboratoryTestHandler(labTestUsecase, customValidator)
	orderHandler := handler.NewPharmacyOrderHandler(orderUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase, customValidator)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		appointmentHandler,
		labTestHandler,
		orderHandler,
		medicineHandler,
		recordHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Storage.MediaRoot,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
