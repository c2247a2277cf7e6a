package main

import (
	"context"
)

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message string `json:"message" example:"pong" doc:"Response message"`
	}
}

// handlePing is a health check endpoint that returns a simple pong message
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	return resp, nil
}

// HealthOutput reports whether the service can reach its providers
type HealthOutput struct {
	Body struct {
		Status              string `json:"status" example:"ok" enum:"ok,degraded"`
		OpenWeatherMapReady bool   `json:"openweathermap_ready" doc:"An OpenWeatherMap API key is configured"`
		SummaryForecastDays int    `json:"summary_forecast_days"`
	}
}

// handleHealth reports degraded when no OpenWeatherMap key is configured,
// since weather and search requests cannot succeed without one
func (app *App) handleHealth(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	resp := &HealthOutput{}
	resp.Body.OpenWeatherMapReady = app.cfg.OpenWeather.APIKey != ""
	resp.Body.SummaryForecastDays = app.cfg.App.ForecastDays
	resp.Body.Status = "ok"
	if !resp.Body.OpenWeatherMapReady {
		resp.Body.Status = "degraded"
	}
	return resp, nil
}
