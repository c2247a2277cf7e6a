package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Report whether the weather provider is configured",
		Tags:        []string{"health"},
	}, app.handleHealth)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-weather-all",
		Method:      http.MethodGet,
		Path:        "/api/weather-all",
		Summary:     "Weather report with outdoor advice",
		Description: "Current conditions, the 5 day forecast and air quality for a city or coordinates, " +
			"together with the derived theme, recommendation, risk level and packing list",
		Tags: []string{"weather"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusInternalServerError,
			http.StatusBadGateway,
		},
	}, app.handleGetWeatherAll)

	huma.Register(app.api, huma.Operation{
		OperationID: "search-locations",
		Method:      http.MethodGet,
		Path:        "/api/locations/search",
		Summary:     "Search places by name",
		Tags:        []string{"location"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, app.handleSearchLocations)

	huma.Register(app.api, huma.Operation{
		OperationID: "reverse-location",
		Method:      http.MethodGet,
		Path:        "/api/locations/reverse",
		Summary:     "Name the place at a coordinate pair",
		Tags:        []string{"location"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, app.handleReverseLocation)

	app.registerMetrics()
}
