package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weather-advisor/internal/advisor"
	"weather-advisor/internal/config"
	"weather-advisor/internal/observability"
	"weather-advisor/internal/providers/openweathermap"
	"weather-advisor/internal/timezone"
	"weather-advisor/internal/types"
)

var ErrLocationRequired = errors.New("a city or coordinates are required")

// WeatherProvider is the upstream source for observations, forecasts and air quality
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query openweathermap.Query) (*openweathermap.CurrentWeather, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.Forecast, error)
	GetAirPollution(ctx context.Context, latitude, longitude float64) (*openweathermap.AirPollution, error)
}

type Service interface {
	GetReport(ctx context.Context, req ReportRequest) (*Report, error)
}

type weatherService struct {
	provider        WeatherProvider
	timezoneService timezone.Service
	cfg             *config.Config
	logger          *slog.Logger
	now             func() time.Time
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewWeatherServiceWithProvider(openweathermap.NewClient(cfg.OpenWeather), tzSvc, cfg, logger), nil
}

func NewWeatherServiceWithProvider(
	provider WeatherProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		provider:        provider,
		timezoneService: timezoneService,
		cfg:             cfg,
		logger:          logger.With("component", "weather-service"),
		now:             time.Now,
	}
}

// GetReport resolves the place, then fetches the forecast and air quality in
// parallel. The advisor only runs once all of them have finished. Air quality
// is optional: its failure is logged and the index reported as absent.
func (s *weatherService) GetReport(ctx context.Context, req ReportRequest) (*Report, error) {
	city := strings.TrimSpace(req.City)
	if city == "" && req.Coords == nil {
		return nil, ErrLocationRequired
	}
	if req.Mode == "" {
		req.Mode = advisor.ModeWalking
	}

	current, err := s.provider.GetCurrentWeather(ctx, openweathermap.Query{City: city, Coords: req.Coords})
	if err != nil {
		s.logger.Error("failed to get current weather", "city", city, "error", err)
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	lat, lon := current.Coord.Lat, current.Coord.Lon

	var (
		forecast *openweathermap.Forecast
		air      *openweathermap.AirPollution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		forecast, err = s.provider.GetForecast(gctx, lat, lon)
		if err != nil {
			return fmt.Errorf("failed to get forecast: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		air, err = s.provider.GetAirPollution(gctx, lat, lon)
		if err != nil {
			s.logger.Warn("air quality unavailable", "latitude", lat, "longitude", lon, "error", err)
			air = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to assemble weather data", "latitude", lat, "longitude", lon, "error", err)
		return nil, err
	}

	input := advisor.Input{
		Snapshot:   mapSnapshot(current),
		Forecast:   mapForecast(forecast),
		AirQuality: mapAirQuality(air),
	}

	bundle := advisor.Derive(input, req.Mode)
	if days := s.cfg.App.ForecastDays; days > 0 && days != advisor.SummaryDays {
		bundle.Forecast = advisor.SummarizeForecast(input.Forecast, days)
	}
	observability.RiskLevels.WithLabelValues(strings.ToLower(bundle.Risk.Level.String()), string(req.Mode)).Inc()

	resolved := current.Name
	if resolved == "" {
		resolved = city
	}

	generatedAt := s.now().UTC()
	meta := Meta{
		PopMax24h:    bundle.PrecipitationMax24h,
		CityResolved: resolved,
		Coord:        types.NewCoords(lat, lon),
		GeneratedAt:  generatedAt,
	}
	if local, tz, err := s.timezoneService.LocalTime(lat, lon, generatedAt); err != nil {
		s.logger.Warn("failed to determine timezone", "latitude", lat, "longitude", lon, "error", err)
	} else {
		meta.Timezone = tz
		meta.LocalTime = &local
	}

	s.logger.Debug("derived weather report",
		"city", resolved,
		"theme", bundle.Theme,
		"risk", bundle.Risk.Level.String(),
		"mode", req.Mode,
	)

	return &Report{
		Current:    mapCurrent(current),
		Forecast:   input.Forecast,
		AirQuality: input.AirQuality,
		Meta:       meta,
		Advisory:   bundle,
		Mode:       req.Mode,
	}, nil
}
