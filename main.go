package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"studio-site/internal/database"
	"studio-site/internal/domain"
	"studio-site/internal/handler"
	"studio-site/internal/logger"
	"studio-site/internal/notifier"
	"studio-site/internal/ogimage"
	"studio-site/internal/repository"
	"studio-site/internal/services"
	"studio-site/internal/telegram"
	"studio-site/internal/videocdn"

	"github.com/gookit/event"
	"github.com/joho/godotenv"
)

const (
	progressStoreMemory = "memory"
	progressStoreBunt   = "buntdb"
)

type Config struct {
	HTTPAddr          string
	SiteURL           string
	PublicDir         string
	CDNCloudName      string
	WebhookURL        string
	TelegramToken     string
	TelegramChatID    string
	DatabaseDSN       string
	ProgressStore     string
	ProgressDBPath    string
	IntakeSubmitDelay time.Duration
	SecureCookies     bool
	LogLevel          string
	LogJSON           bool
}

type Application struct {
	logger       *logger.ZLogXAdapter
	db           database.DB
	kv           database.KV
	config       *Config
	services     *Services
	handlers     *Handlers
	eventManager *event.Manager
	server       *http.Server
}

type Services struct {
	Intake       *services.IntakeService
	Notification *services.NotificationService
}

type Handlers struct {
	Router http.Handler
}

// main initializes and runs the site
func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// NewApplication creates a new application instance with all dependencies
func NewApplication() (*Application, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	config := loadConfig()

	logger, err := initializeLogger(config.LogLevel, config.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &Application{
		config:       config,
		logger:       logger,
		eventManager: event.NewManager("app"),
	}

	if err := app.initializeStorage(context.Background()); err != nil {
		app.Close()
		return nil, err
	}

	app.services = app.initializeServices()
	app.handlers = app.initializeHandlers()

	app.server = &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           app.handlers.Router,
		ReadHeaderTimeout: handler.TIMEOUT_READ_HEADER,
		WriteTimeout:      handler.TIMEOUT_WRITE,
	}

	return app, nil
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully
func (app *Application) Run() error {
	app.services.Notification.RegisterEventListeners()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	app.logStartupMessages()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	app.logger.Info("🛑 Shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), handler.TIMEOUT_SHUTDOWN)
	defer stop()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.services.Notification.Wait()
	return nil
}

// Close releases databases opened at startup
func (app *Application) Close() {
	if app.db != nil {
		if err := app.db.Close(context.Background()); err != nil {
			app.logger.WithError(err).Error("Failed to close database")
		}
	}

	if app.kv != nil {
		if err := app.kv.Close(); err != nil {
			app.logger.WithError(err).Error("Failed to close progress database")
		}
	}
}

// logStartupMessages displays startup information
func (app *Application) logStartupMessages() {
	app.logger.Info("🚀 Site listening on " + app.config.HTTPAddr)
	app.logger.Info("🔗 Public URL " + app.config.SiteURL)
	app.logger.Info("💾 Intake progress stored in " + app.config.ProgressStore)

	if app.db != nil {
		app.logger.Info("🗄️ Connected to the submissions database")
	} else {
		app.logger.Warn("No DATABASE_URL set, project briefs are not stored")
	}

	if !app.services.Notification.Configured() {
		app.logger.Warn("No notifier configured, lead alerts are disabled")
	}
}

// loadConfig loads configuration from environment variables; nothing is required
func loadConfig() *Config {
	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":3000"),
		SiteURL:           strings.TrimSuffix(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		PublicDir:         getEnv("PUBLIC_DIR", "public"),
		CDNCloudName:      getEnv("CDN_CLOUD_NAME", ""),
		WebhookURL:        getEnv("WEBHOOK_URL", ""),
		TelegramToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnv("TELEGRAM_CHAT_ID", ""),
		DatabaseDSN:       getEnv("DATABASE_URL", ""),
		ProgressStore:     strings.ToLower(getEnv("PROGRESS_STORE", progressStoreMemory)),
		ProgressDBPath:    getEnv("PROGRESS_DB_PATH", "data/progress.db"),
		IntakeSubmitDelay: getEnvAsDuration("INTAKE_SUBMIT_DELAY", 1500*time.Millisecond),
		SecureCookies:     getEnvAsBool("SECURE_COOKIES", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogJSON:           getEnvAsBool("LOG_JSON", false),
	}
}

// initializeLogger creates and configures the application logger
func initializeLogger(logLevel string, jsonFormat bool) (*logger.ZLogXAdapter, error) {
	return logger.NewAdapter(&logger.Config{
		Level:          logLevel,
		DateTimeLayout: "02/01/2006 15:04:05",
		Colored:        !jsonFormat,
		JSONFormat:     jsonFormat,
		UseEmoji:       !jsonFormat,
	})
}

// initializeStorage opens the optional submissions database and the progress store
func (app *Application) initializeStorage(ctx context.Context) error {
	if app.config.DatabaseDSN != "" {
		db, err := database.NewPostgres(ctx, app.config.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.db = db
	}

	switch app.config.ProgressStore {
	case progressStoreBunt:
		kv, err := database.NewBuntDB(app.config.ProgressDBPath)
		if err != nil {
			return fmt.Errorf("failed to open progress database: %w", err)
		}
		app.kv = kv
	case progressStoreMemory:
	default:
		app.logger.Warnf("Unknown PROGRESS_STORE %q, using memory", app.config.ProgressStore)
		app.config.ProgressStore = progressStoreMemory
	}

	return nil
}

// initializeServices creates all application services with their dependencies
func (app *Application) initializeServices() *Services {
	var progress domain.ProgressStore = repository.NewMemoryProgressRepository()
	if app.kv != nil {
		progress = repository.NewKVProgressRepository(app.kv)
	}

	var submissions domain.SubmissionRepository
	if app.db != nil {
		repo := repository.NewSubmissionRepository(app.db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			app.logger.WithError(err).Error("Failed to prepare submissions table, briefs will not be stored")
		} else {
			submissions = repo
		}
	}

	return &Services{
		Intake: services.NewIntakeService(
			progress,
			submissions,
			app.eventManager,
			app.config.IntakeSubmitDelay,
			app.logger,
		),
		Notification: services.NewNotificationService(
			app.eventManager,
			handler.TIMEOUT_NOTIFY,
			app.logger,
			app.initializeNotifiers()...,
		),
	}
}

// initializeNotifiers builds every lead alert channel that has configuration
func (app *Application) initializeNotifiers() []domain.Notifier {
	var notifiers []domain.Notifier

	if app.config.WebhookURL != "" {
		notifiers = append(notifiers, notifier.NewWebhook(app.config.WebhookURL, handler.TIMEOUT_NOTIFY))
	}

	if app.config.TelegramToken != "" {
		tg, err := telegram.NewTelegram(app.config.TelegramToken, app.config.TelegramChatID)
		if err != nil {
			app.logger.WithError(err).Warn("Telegram notifier disabled")
		} else {
			notifiers = append(notifiers, tg)
		}
	}

	return notifiers
}

// initializeHandlers creates the HTTP router with every page handler
func (app *Application) initializeHandlers() *Handlers {
	videos := videocdn.New(app.config.CDNCloudName, app.logger)
	sanitizer := handler.NewTextSanitizer()

	publicDir := app.config.PublicDir
	if _, err := os.Stat(publicDir); err != nil {
		publicDir = ""
	}

	return &Handlers{
		Router: handler.NewRouter(handler.Handlers{
			Pages:     handler.NewPageHandler(videos, app.logger),
			Intake:    handler.NewIntakeHandler(app.services.Intake, sanitizer, app.config.SecureCookies, app.logger),
			Solutions: handler.NewSolutionsHandler(videos, handler.NewPublisher(app.eventManager), sanitizer, app.config.SiteURL, app.logger),
			OG:        handler.NewOGHandler(ogimage.Render, sanitizer, app.logger),
		}, publicDir, app.logger),
	}
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves environment variable as integer with fallback
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves environment variable as boolean with fallback
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("2s") or plain milliseconds ("1500")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms := getEnvAsInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
