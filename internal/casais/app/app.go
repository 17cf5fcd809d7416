package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/casais/internal/casais/http"
	"github.com/aussiebroadwan/casais/internal/casais/media"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/postgres"
	"github.com/aussiebroadwan/casais/internal/casais/store/drivers/sqlite"
	"github.com/aussiebroadwan/casais/pkg/cryptox"
	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the casais API and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	media    media.Bridge
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	hasher   *cryptox.Hasher

	// Services
	accountService     *service.AccountService
	casalService       *service.CasalService
	casalSimpleService *service.CasalSimpleService
	eventoService      *service.EventoService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds the application. Migrations are applied
// before it returns.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "casais-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initSecurity(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initMedia(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("casais api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, then closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down casais api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	return app.Close()
}

// Close releases the store without touching the HTTP server. Used by CLI
// subcommands that never start it.
func (app *Application) Close() error {
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	app.logger.Info("casais api stopped")
	return nil
}

// Handler exposes the routed HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// SetRole changes an account's role. There is no HTTP route for this.
func (app *Application) SetRole(ctx context.Context, username, role string) error {
	return app.accountService.SetRole(ctx, username, role)
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, driver, err := openStore(ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

// openStore picks the driver from the URL scheme.
func openStore(ctx context.Context, url string) (store.Store, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		st, err := postgres.NewStore(ctx, url)
		return st, "postgres", err
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == ":memory:" {
			st, err := sqlite.NewStore(path)
			return st, "sqlite", err
		}
		st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
		return st, "sqlite", err
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		st, err := sqlite.NewStore(url)
		return st, "sqlite", err
	}
	return nil, "", fmt.Errorf("unsupported DB_URL scheme: %q", url)
}

func (app *Application) initSecurity() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewHasher(pepper)

	secret := []byte(app.cfg.Secret)
	if app.signer, err = jwtx.NewSignerHS256(secret); err != nil {
		return err
	}
	if app.verifier, err = jwtx.NewVerifierHS256(secret, app.cfg.Issuer); err != nil {
		return err
	}
	return nil
}

func (app *Application) initMedia(ctx context.Context) error {
	if app.cfg.Media.Bucket == "" {
		app.media = media.Disabled{}
		app.logger.Warn("media bucket not configured, image uploads disabled")
		return nil
	}

	bridge, err := media.NewS3(ctx, app.cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media bridge: %w", err)
	}
	app.media = bridge
	app.logger.Info("media bridge ready", "bucket", app.cfg.Media.Bucket, "folder", app.cfg.Media.Folder)
	return nil
}

func (app *Application) initServices() {
	app.accountService = &service.AccountService{
		Store:    app.db,
		Hasher:   app.hasher,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.casalService = &service.CasalService{Store: app.db, Media: app.media}
	app.casalSimpleService = &service.CasalSimpleService{Store: app.db}
	app.eventoService = &service.EventoService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSOrigins...,
	)

	router.AccountService = app.accountService
	router.CasalService = app.casalService
	router.CasalSimpleService = app.casalSimpleService
	router.EventoService = app.eventoService
	if app.cfg.MaxUploadBytes > 0 {
		router.MaxUploadBytes = app.cfg.MaxUploadBytes
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
