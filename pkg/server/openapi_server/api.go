// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"net/http"
)

// DefaultApiRouter defines the required methods for binding the api requests to a responses for the DefaultApi
// The DefaultApiRouter implementation should parse necessary information from the http request,
// pass the data to a DefaultApiServicer to perform the required actions, then write the service results to the http response.
type DefaultApiRouter interface {
	ComputeRoute(http.ResponseWriter, *http.Request)
	ComputeRouteGeoJSON(http.ResponseWriter, *http.Request)
	ComputeRouteOSM(http.ResponseWriter, *http.Request)
	GetCapitals(http.ResponseWriter, *http.Request)
	GetCapital(http.ResponseWriter, *http.Request)
	GetNearestCapital(http.ResponseWriter, *http.Request)
	GetCities(http.ResponseWriter, *http.Request)
	GetDistance(http.ResponseWriter, *http.Request)
}

// DefaultApiServicer defines the api actions for the DefaultApi service
// This interface intended to stay up to date with the openapi yaml used to generate it,
// while the service implementation can ignored with the .openapi-generator-ignore file
// and updated with the logic required for the API.
type DefaultApiServicer interface {
	ComputeRoute(context.Context, RouteRequest) (ImplResponse, error)
	ComputeRouteGeoJSON(context.Context, RouteRequest) (ImplResponse, error)
	ComputeRouteOSM(context.Context, RouteRequest) (ImplResponse, error)
	GetCapitals(context.Context) (ImplResponse, error)
	GetCapital(context.Context, string) (ImplResponse, error)
	GetNearestCapital(context.Context, float64, float64) (ImplResponse, error)
	GetCities(context.Context) (ImplResponse, error)
	GetDistance(context.Context, string, string) (ImplResponse, error)
}
