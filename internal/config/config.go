package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	App         AppConfig
	OpenWeather OpenWeatherConfig
	Nominatim   NominatimConfig
	CORS        CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int
	GinMode         string        // debug, release, test
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Days kept in the forecast summary
}

// OpenWeatherConfig configures the OpenWeatherMap provider
type OpenWeatherConfig struct {
	APIKey    string
	BaseURL   string
	GeoURL    string
	Lang      string
	Timeout   time.Duration
	RateLimit float64 // requests per second
	Burst     int
}

// NominatimConfig configures the OpenStreetMap reverse geocoder
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// CORSConfig lists the origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from a .env file, config file and environment variables
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-advisor")

	setDefaults(v)

	v.SetEnvPrefix("WEATHER_ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also accept the unprefixed key name
	if err := v.BindEnv("openweather.apikey", "WEATHER_ADVISOR_OPENWEATHER_APIKEY", "OPENWEATHER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.CORS.AllowedOrigins = splitList(strings.Join(cfg.CORS.AllowedOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.forecastdays", 3)
	v.SetDefault("openweather.apikey", "")
	v.SetDefault("openweather.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("openweather.geourl", "https://api.openweathermap.org/geo/1.0")
	v.SetDefault("openweather.lang", "en")
	v.SetDefault("openweather.timeout", 10*time.Second)
	v.SetDefault("openweather.ratelimit", 10.0)
	v.SetDefault("openweather.burst", 5)
	v.SetDefault("nominatim.baseurl", "https://nominatim.openstreetmap.org")
	v.SetDefault("nominatim.useragent", "weather-advisor/1.0")
	v.SetDefault("nominatim.timeout", 10*time.Second)
	v.SetDefault("cors.allowedorigins", []string{"*"})
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.App.ForecastDays <= 0 {
		return fmt.Errorf("app.forecastdays must be positive, got %d", c.App.ForecastDays)
	}
	if c.OpenWeather.RateLimit <= 0 {
		return fmt.Errorf("openweather.ratelimit must be positive, got %v", c.OpenWeather.RateLimit)
	}
	if c.OpenWeather.Burst <= 0 {
		return fmt.Errorf("openweather.burst must be positive, got %d", c.OpenWeather.Burst)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
