package main

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"weather-advisor/internal/location"
	"weather-advisor/internal/types"
)

type SearchLocationsInput struct {
	Query string `query:"q" required:"true" minLength:"1" example:"Bandung" doc:"Place name"`
	Limit int    `query:"limit" minimum:"0" maximum:"10" default:"5" doc:"Maximum number of matches"`
}

type SearchLocationsOutput struct {
	Body struct {
		Results []types.Place `json:"results"`
	}
}

func (app *App) handleSearchLocations(ctx context.Context, input *SearchLocationsInput) (*SearchLocationsOutput, error) {
	places, err := app.locationService.Search(ctx, input.Query, input.Limit)
	if err != nil {
		if errors.Is(err, location.ErrEmptyQuery) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error502BadGateway("failed to search locations")
	}

	resp := &SearchLocationsOutput{}
	resp.Body.Results = places
	return resp, nil
}

type ReverseLocationInput struct {
	Latitude  float64 `query:"lat" required:"true" example:"-6.9147" doc:"Latitude in decimal degrees"`
	Longitude float64 `query:"lon" required:"true" example:"107.6098" doc:"Longitude in decimal degrees"`
}

type ReverseLocationOutput struct {
	Body *types.Place
}

func (app *App) handleReverseLocation(ctx context.Context, input *ReverseLocationInput) (*ReverseLocationOutput, error) {
	place, err := app.locationService.Reverse(ctx, input.Latitude, input.Longitude)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, location.ErrInvalidLatitude) || errors.Is(err, location.ErrInvalidLongitude) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error502BadGateway("failed to look up location")
	}

	return &ReverseLocationOutput{Body: place}, nil
}
