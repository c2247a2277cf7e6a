package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"weather-advisor/internal/advisor"
	"weather-advisor/internal/location"
	"weather-advisor/internal/providers/openweathermap"
	"weather-advisor/internal/types"
	"weather-advisor/internal/weather"
)

// WeatherAllInput selects the place and activity mode. Coordinates are strings
// so an absent value can be told apart from 0.
type WeatherAllInput struct {
	City string `query:"city" example:"Jakarta" doc:"Place name to resolve"`
	Lat  string `query:"lat" example:"-6.2088" doc:"Latitude in decimal degrees, used together with lon instead of city"`
	Lon  string `query:"lon" example:"106.8456" doc:"Longitude in decimal degrees"`
	Mode string `query:"mode" example:"walking" doc:"Activity mode: walking or riding"`
}

type WeatherAllOutput struct {
	Body *weather.Report
}

func (app *App) handleGetWeatherAll(ctx context.Context, input *WeatherAllInput) (*WeatherAllOutput, error) {
	mode, err := advisor.ParseActivityMode(input.Mode)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	coords, err := parseCoords(input.Lat, input.Lon)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if strings.TrimSpace(input.City) == "" && coords == nil {
		return nil, huma.Error400BadRequest("query 'city' is required")
	}

	report, err := app.weatherService.GetReport(ctx, weather.ReportRequest{
		City:   input.City,
		Coords: coords,
		Mode:   mode,
	})
	if err != nil {
		return nil, app.weatherError(err)
	}

	return &WeatherAllOutput{Body: report}, nil
}

// parseCoords returns nil when neither value is given
func parseCoords(lat, lon string) (*types.Coords, error) {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" && lon == "" {
		return nil, nil
	}
	if lat == "" || lon == "" {
		return nil, errors.New("query 'lat' and 'lon' must be given together")
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, errors.New("query 'lat' must be a number")
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, errors.New("query 'lon' must be a number")
	}
	if err := location.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	coords := types.NewCoords(latitude, longitude)
	return &coords, nil
}

// weatherError maps service errors to HTTP errors. Upstream failures keep the
// provider's status and message, and the provider's cod is returned as an error detail.
func (app *App) weatherError(err error) error {
	var upstream *openweathermap.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return huma.NewError(upstream.StatusCode, upstream.Message, &huma.ErrorDetail{
			Message:  "upstream response code",
			Location: "cod",
			Value:    upstream.Code,
		})
	case errors.Is(err, weather.ErrLocationRequired):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, openweathermap.ErrMissingAPIKey):
		app.logger.Error("weather request rejected", "error", err)
		return huma.Error500InternalServerError("Missing OPENWEATHER_API_KEY")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("weather provider did not respond in time")
	default:
		app.logger.Error("failed to get weather report", "error", err)
		return huma.Error502BadGateway("failed to fetch weather data")
	}
}
