package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"weather-advisor/internal/config"
	"weather-advisor/internal/observability"
	"weather-advisor/internal/types"
)

// API Docs: https://openweathermap.org/api
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=Jakarta&units=metric&appid=KEY
const (
	providerName = "openweathermap"
	units        = "metric"

	endpointCurrent      = "weather"
	endpointForecast     = "forecast"
	endpointAirPollution = "air_pollution"
	endpointGeocoding    = "direct"
)

// Query selects the place for a current weather request. Coordinates win over City.
type Query struct {
	City   string
	Coords *types.Coords
}

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	geoURL     string
	lang       string
}

func NewClient(cfg config.OpenWeatherConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		geoURL:     strings.TrimRight(cfg.GeoURL, "/"),
		lang:       cfg.Lang,
	}
}

// GetCurrentWeather fetches current conditions by city name or coordinates.
func (c *Client) GetCurrentWeather(ctx context.Context, query Query) (*CurrentWeather, error) {
	q := url.Values{}
	switch {
	case query.Coords != nil:
		setCoords(q, query.Coords.Latitude, query.Coords.Longitude)
	case strings.TrimSpace(query.City) != "":
		q.Set("q", strings.TrimSpace(query.City))
	default:
		return nil, fmt.Errorf("current weather query needs a city or coordinates")
	}

	var resp CurrentWeather
	if err := c.get(ctx, c.baseURL, endpointCurrent, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error) {
	q := url.Values{}
	setCoords(q, latitude, longitude)

	var resp Forecast
	if err := c.get(ctx, c.baseURL, endpointForecast, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAirPollution fetches the current air quality index.
func (c *Client) GetAirPollution(ctx context.Context, latitude, longitude float64) (*AirPollution, error) {
	q := url.Values{}
	setCoords(q, latitude, longitude)

	var resp AirPollution
	if err := c.get(ctx, c.baseURL, endpointAirPollution, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchLocations resolves a free-text place name to candidate locations.
func (c *Client) SearchLocations(ctx context.Context, query string, limit int) ([]GeoResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var results []GeoResult
	if err := c.get(ctx, c.geoURL, endpointGeocoding, q, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func setCoords(q url.Values, latitude, longitude float64) {
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
}

func (c *Client) get(ctx context.Context, base, endpoint string, q url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	u, err := url.Parse(base + "/" + endpoint)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	if endpoint != endpointGeocoding {
		q.Set("units", units)
		if c.lang != "" {
			q.Set("lang", c.lang)
		}
	}
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveUpstream(providerName, endpoint, 0)
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	observability.ObserveUpstream(providerName, endpoint, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return newUpstreamError(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
