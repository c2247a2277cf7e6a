package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"weather-advisor/internal/config"
	"weather-advisor/internal/location"
	"weather-advisor/internal/observability"
	"weather-advisor/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	engine          *gin.Engine
	api             huma.API
	handler         http.Handler
	cfg             *config.Config
	logger          *slog.Logger
	weatherService  weather.Service
	locationService location.Service
}

// NewApp creates a new application wired to the real providers
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	weatherService, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather service: %w", err)
	}
	locationService, err := location.NewLocationService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create location service: %w", err)
	}
	return newApp(cfg, logger, weatherService, locationService), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, weatherService weather.Service, locationService location.Service) *App {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger),
		requestMetrics(),
	)

	humaConfig := huma.DefaultConfig("Weather Advisor API", "1.0.0")
	humaConfig.Info.Description = "Current weather, forecast and air quality with outdoor activity advice"
	humaConfig.Servers = []*huma.Server{
		{URL: fmt.Sprintf("http://localhost:%d", cfg.Server.Port), Description: "Development server"},
	}

	api := humagin.New(engine, humaConfig)

	app := &App{
		engine:          engine,
		api:             api,
		cfg:             cfg,
		logger:          logger,
		weatherService:  weatherService,
		locationService: locationService,
	}

	app.registerRoutes()

	app.handler = cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})(engine)

	logger.Info("application initialized")

	return app
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests
func (app *App) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

// registerMetrics exposes Prometheus metrics outside the OpenAPI document
func (app *App) registerMetrics() {
	app.engine.GET("/metrics", gin.WrapH(observability.Handler()))
}
