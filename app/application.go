// Package app wires configuration, secret resolution, providers and
// the two listeners into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/enviark/weather/api"
	"github.com/enviark/weather/config"
	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/providers"
	"github.com/enviark/weather/secrets"
	"github.com/enviark/weather/web"
)

// shutdownTimeout bounds how long draining the listeners may take.
const shutdownTimeout = 10 * time.Second

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	server    *api.Server
	opsServer *http.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	app.setupLogging()

	if err := app.resolveAPIKey(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) setupLogging() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: app.config.Log.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))
}

// resolveAPIKey fills in the upstream API key from the configured
// secret source when the environment did not provide one. A key that
// is still missing afterwards is a startup defect, not a per-request
// condition.
func (app *Application) resolveAPIKey() error {
	if app.config.Weather.APIKey != "" {
		return nil
	}

	source, name := app.secretSource()
	slog.Info("Resolving weather API key", "source", app.config.Secrets.Source, "name", name)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key, err := source.Get(ctx, name)
	if err != nil {
		slog.Error("Failed to resolve weather API key", "error", err)
		return fmt.Errorf("resolve weather API key: %w", err)
	}
	if key == "" {
		return apperrors.NewConfigurationError("weather API key resolved to an empty value", nil)
	}

	app.config.Weather.APIKey = key
	return nil
}

func (app *Application) secretSource() (secrets.Source, string) {
	if app.config.Secrets.Source == "ssm" {
		return secrets.NewSSMSource(app.config.Secrets.SSMRegion), app.config.Secrets.SSMParameterName
	}
	return secrets.NewEnvSource(), app.config.Secrets.APIKeyName
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	tmpl, err := web.Template()
	if err != nil {
		return fmt.Errorf("parse page template: %w", err)
	}

	weather := app.createWeatherProvider()
	geo := app.createGeoResolver()

	app.server = api.NewServer(app.config, tmpl, weather, geo)
	app.opsServer = api.NewOpsServer(app.config.Ops.Port)

	slog.Info("Services initialized successfully")
	return nil
}

// createWeatherProvider builds the upstream weather client with its
// decorators: metrics always, a token bucket when a rate is set.
func (app *Application) createWeatherProvider() providers.WeatherProvider {
	provider := providers.NewOpenWeatherMapProvider(&app.config.Weather)
	if app.config.Weather.RequestsPerSecond > 0 {
		provider = providers.NewRateLimitedWeatherProvider(provider, app.config.Weather.RequestsPerSecond)
	}
	return providers.NewInstrumentedWeatherProvider(provider)
}

func (app *Application) createGeoResolver() providers.GeoResolver {
	resolver := providers.NewIPAPIResolver(&app.config.Geo)
	if app.config.Geo.RequestsPerSecond > 0 {
		resolver = providers.NewRateLimitedGeoResolver(resolver, app.config.Geo.RequestsPerSecond)
	}
	return providers.NewInstrumentedGeoResolver(resolver)
}

// Start runs both listeners and blocks until one of them fails or the
// context is cancelled, then drains them with a bounded timeout.
func (app *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("Starting HTTP server", "port", app.config.Server.Port)
		return app.server.Start()
	})

	group.Go(func() error {
		slog.Info("Starting ops listener", "port", app.config.Ops.Port)
		if err := app.opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return app.Shutdown()
	})

	return group.Wait()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if app.server != nil {
		if err := app.server.Shutdown(ctx); err != nil {
			slog.Warn("Error shutting down HTTP server", "error", err)
		}
	}
	if app.opsServer != nil {
		if err := app.opsServer.Shutdown(ctx); err != nil {
			slog.Warn("Error shutting down ops listener", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
