package app

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

	httpapi "github.com/aussiebroadwan/chatkit/internal/chatkit/http"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/service"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store/drivers/sqlite"
	"github.com/aussiebroadwan/chatkit/pkg/cryptox"
	"github.com/aussiebroadwan/chatkit/pkg/idp"
	"github.com/aussiebroadwan/chatkit/pkg/sessiontoken"
	"github.com/aussiebroadwan/chatkit/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the chatkit service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	codec    *sessiontoken.Codec
	verifier *idp.Verifier

	// Services
	sessionService      *service.SessionService
	conversationService *service.ConversationService
	usageService        *service.UsageService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "chatkit",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	secret, err := app.resolveSessionSecret()
	if err != nil {
		return nil, err
	}
	app.codec = sessiontoken.New(secret, sessiontoken.WithValidity(cfg.SessionTTL))

	if cfg.IdPIssuer == "" || cfg.IdPJWKSURL == "" {
		return nil, errors.New("IDP_ISSUER and IDP_JWKS_URL must be set")
	}
	app.verifier = idp.New(cfg.IdPIssuer, cfg.IdPJWKSURL, cfg.IdPAudience)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// resolveSessionSecret picks the signing secret: explicit env value first,
// then a secret file (generated on first run), then the dev fallback.
// Production refuses to boot on the fallback.
func (app *Application) resolveSessionSecret() (string, error) {
	if app.cfg.SessionSecret != "" {
		return app.cfg.SessionSecret, nil
	}

	if app.cfg.SessionSecretFile != "" {
		secret, err := cryptox.LoadOrGenerateSecret(app.cfg.SessionSecretFile)
		if err != nil {
			return "", fmt.Errorf("failed to load session secret: %w", err)
		}
		return secret, nil
	}

	if app.cfg.Env == "prod" {
		return "", errors.New("CHATKIT_SESSION_SECRET (or _FILE) must be set in prod")
	}

	app.logger.Warn("using development fallback session secret", "env", app.cfg.Env)
	return DevSessionSecret, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Warm the identity provider key cache; not fatal if the provider is
	// briefly unreachable, verification refetches on demand.
	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.verifier.Warm(warmCtx); err != nil {
		app.logger.Warn("could not warm identity provider keys", "error", err)
	}
	cancel()

	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("chatkit service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down chatkit service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("chatkit service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Codec: app.codec,
		IdP:   app.verifier,
	}
	app.conversationService = &service.ConversationService{Store: app.db}
	app.usageService = &service.UsageService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.UsageRetention,
		app.cfg.ConversationRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.ConversationService = app.conversationService
	router.UsageService = app.usageService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
