package openapi_server

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/geometry"
	"github.com/natevvv/capital-routing/pkg/graph/path"
	"github.com/natevvv/capital-routing/pkg/routing"
	"go.uber.org/zap"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router
	logger *zap.Logger
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router, logger *zap.Logger) DefaultApiServicer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultApiService{
		router: router,
		logger: logger,
	}
}

// route runs the route query and maps request errors to 400.
func (s *DefaultApiService) route(ctx context.Context, routeRequest RouteRequest) (routing.Route, ImplResponse, error) {
	metric := path.Distance
	if routeRequest.Metric != "" {
		m, err := path.ParseMetric(routeRequest.Metric)
		if err != nil {
			return routing.Route{}, Response(http.StatusBadRequest, nil), err
		}
		metric = m
	}

	route, err := s.router.ComputeRouteContext(ctx, routeRequest.Source, routeRequest.Destination, metric)
	switch {
	case errors.Is(err, routing.ErrSameEndpoint), errors.Is(err, routing.ErrEmptyName), errors.Is(err, path.ErrUnknownMetric):
		return route, Response(http.StatusBadRequest, nil), err
	case err != nil:
		s.logger.Warn("route query failed", zap.Error(err))
		return route, Response(http.StatusServiceUnavailable, nil), err
	}
	return route, ImplResponse{}, nil
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, failure, err := s.route(ctx, routeRequest)
	if err != nil {
		return failure, err
	}

	routeResult := RouteResult{
		Id:          uuid.NewString(),
		Source:      route.Source,
		Destination: route.Destination,
		Metric:      route.Metric.String(),
		Reachable:   route.Exists,
		Warnings:    route.Warnings,
	}
	if route.Exists {
		waypoints := make([]Point, 0, len(route.Waypoints))
		for _, waypoint := range route.Waypoints {
			waypoints = append(waypoints, Point{Lat: waypoint.Lat(), Lon: waypoint.Lon()})
		}
		routeResult.Path = &Path{
			Cities:    route.Cities,
			Waypoints: waypoints,
			Cost:      route.Cost,
			Duration:  int32(route.Duration),
			Distance:  route.Distance,
		}
	}

	return Response(http.StatusOK, routeResult), nil
}

func (s *DefaultApiService) ComputeRouteGeoJSON(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, failure, err := s.route(ctx, routeRequest)
	if err != nil {
		return failure, err
	}
	return Response(http.StatusOK, routing.RouteGeoJSON(route)), nil
}

func (s *DefaultApiService) ComputeRouteOSM(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, failure, err := s.route(ctx, routeRequest)
	if err != nil {
		return failure, err
	}
	return Response(http.StatusOK, routing.RouteOSM(route)), nil
}

func (s *DefaultApiService) GetCapitals(ctx context.Context) (ImplResponse, error) {
	capitals := s.router.GetCapitals()

	result := make([]Capital, 0, len(capitals))
	for _, c := range capitals {
		result = append(result, toCapital(c))
	}

	return Response(http.StatusOK, result), nil
}

func (s *DefaultApiService) GetCapital(ctx context.Context, name string) (ImplResponse, error) {
	c, err := s.router.GetCapital(name)
	if err != nil {
		return Response(http.StatusNotFound, nil), err
	}
	return Response(http.StatusOK, toCapital(c)), nil
}

func (s *DefaultApiService) GetNearestCapital(ctx context.Context, lat, lon float64) (ImplResponse, error) {
	point := geometry.MakePoint(lat, lon)
	if err := point.Validate(); err != nil {
		return Response(http.StatusBadRequest, nil), &ParsingError{Err: err}
	}

	c, ok := s.router.NearestCapital(point)
	if !ok {
		return Response(http.StatusNotFound, nil), capital.ErrNotFound
	}
	return Response(http.StatusOK, toCapital(c)), nil
}

func (s *DefaultApiService) GetCities(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, Cities{Cities: s.router.GetCities()}), nil
}

func (s *DefaultApiService) GetDistance(ctx context.Context, from, to string) (ImplResponse, error) {
	km, err := s.router.Distance(from, to)
	if err != nil {
		return Response(http.StatusNotFound, nil), err
	}
	return Response(http.StatusOK, DistanceResult{From: from, To: to, Km: km}), nil
}

func toCapital(c capital.Capital) Capital {
	return Capital{
		Name:     c.Name,
		Position: Point{Lat: c.Lat(), Lon: c.Lon()},
		Geohash:  c.Geohash,
	}
}
