package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"weather-advisor/internal/config"
	"weather-advisor/internal/providers/openstreetmap"
	"weather-advisor/internal/providers/openweathermap"
	"weather-advisor/internal/timezone"
	"weather-advisor/internal/types"
)

const (
	DefaultSearchLimit = 5
	MaxSearchLimit     = 10
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrEmptyQuery       = errors.New("search query is required")
)

// Service resolves place names and coordinates
type Service interface {
	// Search returns places matching a free-text name
	Search(ctx context.Context, query string, limit int) ([]types.Place, error)
	// Reverse names the place at a coordinate pair and attaches its timezone
	Reverse(ctx context.Context, latitude, longitude float64) (*types.Place, error)
}

// GeocodingProvider defines the interface for forward geocoding providers
type GeocodingProvider interface {
	SearchLocations(ctx context.Context, query string, limit int) ([]openweathermap.GeoResult, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocoder        GeocodingProvider
	reverseProvider ReverseGeocodeProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewLocationServiceWithProviders(
		openweathermap.NewClient(cfg.OpenWeather),
		openstreetmap.NewClient(cfg.Nominatim),
		tzSvc,
		logger,
	), nil
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocoder GeocodingProvider,
	reverseProvider ReverseGeocodeProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocoder:        geocoder,
		reverseProvider: reverseProvider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

// ValidateCoordinates checks both components against their geographic ranges.
// NaN and infinities are rejected.
func ValidateCoordinates(latitude, longitude float64) error {
	if types.NewCoords(latitude, longitude).Valid() {
		return nil
	}
	if !(latitude >= -90 && latitude <= 90) {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	return fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

func (s *locationService) Search(ctx context.Context, query string, limit int) ([]types.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	results, err := s.geocoder.SearchLocations(ctx, query, clampLimit(limit))
	if err != nil {
		s.logger.Error("failed to search locations", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	places := make([]types.Place, 0, len(results))
	for _, r := range results {
		places = append(places, types.Place{
			Name:        r.Name,
			State:       r.State,
			CountryCode: r.Country,
			Coordinates: types.NewCoords(r.Lat, r.Lon),
		})
	}
	return places, nil
}

// Reverse calls the reverse geocoder and the timezone finder in parallel.
// A timezone failure is logged and leaves the zone empty.
func (s *locationService) Reverse(ctx context.Context, latitude, longitude float64) (*types.Place, error) {
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		lookupResp  *openstreetmap.LookupAPIResponse
		lookupErr   error
		tz          string
		timezoneErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		lookupResp, lookupErr = s.reverseProvider.Lookup(ctx, latitude, longitude)
		if lookupErr != nil {
			lookupErr = fmt.Errorf("failed to get location: %w", lookupErr)
		}
	}()

	go func() {
		defer wg.Done()
		tz, timezoneErr = s.timezoneService.GetTimezone(latitude, longitude)
	}()

	wg.Wait()

	if lookupErr != nil {
		s.logger.Error("reverse lookup failed", "latitude", latitude, "longitude", longitude, "error", lookupErr)
		return nil, lookupErr
	}
	if timezoneErr != nil {
		s.logger.Warn("failed to determine timezone", "latitude", latitude, "longitude", longitude, "error", timezoneErr)
	}

	place, err := translatePlace(lookupResp)
	if err != nil {
		return nil, err
	}
	place.Coordinates = types.NewCoords(latitude, longitude)
	place.Timezone = tz

	return place, nil
}

// translatePlace converts an OpenStreetMap reverse lookup response to a Place
func translatePlace(resp *openstreetmap.LookupAPIResponse) (*types.Place, error) {
	if resp == nil {
		return nil, fmt.Errorf("lookup response is nil")
	}

	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return &types.Place{
		Name:        name,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: strings.ToUpper(resp.Address.CountryCode),
	}, nil
}
