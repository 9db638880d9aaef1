package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/geometry"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/natevvv/capital-routing/pkg/graph/path"
	"go.uber.org/zap"
)

const DefaultCacheSize = 1024

var (
	ErrEmptyName    = errors.New("routing: city name is empty")
	ErrSameEndpoint = errors.New("routing: source and destination are the same city")
)

// Waypoint is a located city on a route.
type Waypoint struct {
	City string
	geometry.Point
}

// Route is the answer to a route query. Cost, Duration and Distance are zero if Exists is false.
// Routes may be shared through the cache, so their slices must not be modified.
type Route struct {
	Source      string
	Destination string
	Metric      path.Metric
	Exists      bool
	Cities      []string   // every city from source to destination
	Waypoints   []Waypoint // the cities of the route with known coordinates
	Cost        float64
	Duration    int     // minutes
	Distance    float64 // km
	Warnings    []string
}

type Option func(*Router)

// WithCacheSize sets the number of remembered routes. 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(r *Router) {
		r.cacheSize = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type routeKey struct {
	source      string
	destination string
	metric      path.Metric
}

// Router answers route queries over a flight graph and a capital registry.
// Neither may be modified once the router is created; the router itself is safe for concurrent use.
type Router struct {
	graph     graph.Graph
	registry  *capital.Registry
	cache     *lru.Cache[routeKey, Route]
	cacheSize int
	logger    *zap.Logger
}

func NewRouter(g graph.Graph, reg *capital.Registry, opts ...Option) (*Router, error) {
	r := &Router{
		graph:     g,
		registry:  reg,
		cacheSize: DefaultCacheSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cacheSize > 0 {
		cache, err := lru.New[routeKey, Route](r.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("routing: create cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

func (r *Router) ComputeRoute(source, destination string, metric path.Metric) (Route, error) {
	return r.ComputeRouteContext(context.Background(), source, destination, metric)
}

// ComputeRouteContext validates the request and searches the route. A missing route is
// not an error: it is reported through Route.Exists.
func (r *Router) ComputeRouteContext(ctx context.Context, source, destination string, metric path.Metric) (Route, error) {
	source, destination = strings.TrimSpace(source), strings.TrimSpace(destination)
	if source == "" || destination == "" {
		return Route{}, ErrEmptyName
	}
	if strings.EqualFold(source, destination) {
		return Route{}, fmt.Errorf("%w: %s", ErrSameEndpoint, source)
	}
	if !metric.Valid() {
		return Route{}, fmt.Errorf("%w: %d", path.ErrUnknownMetric, int(metric))
	}

	source, destination = r.resolveCity(source), r.resolveCity(destination)
	key := routeKey{source: source, destination: destination, metric: metric}
	if r.cache != nil {
		if route, ok := r.cache.Get(key); ok {
			return route, nil
		}
	}

	result, err := path.FindPathContext(ctx, r.graph, r.registry, source, destination, metric, path.WithLogger(r.logger))
	if err != nil {
		return Route{}, err
	}

	route := Route{
		Source:      source,
		Destination: destination,
		Metric:      metric,
		Exists:      result.Found(),
		Cities:      result.Path,
		Cost:        result.TotalCost,
		Duration:    result.TotalDuration,
		Warnings:    result.Warnings,
	}
	if route.Exists {
		route.Waypoints = r.buildWaypoints(route.Cities)
		route.Distance = r.routeDistance(&route)
	}

	r.logger.Debug("route computed",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Stringer("metric", metric),
		zap.Bool("exists", route.Exists),
		zap.Int("stops", len(route.Cities)),
		zap.Float64("cost", route.Cost),
		zap.Int("duration", route.Duration))

	if r.cache != nil {
		r.cache.Add(key, route)
	}
	return route, nil
}

// resolveCity maps a query to the name used by the flight graph. Exact graph names win,
// otherwise the registry's spelling of the capital is tried.
func (r *Router) resolveCity(name string) string {
	if _, ok := r.graph.CityIndex(name); ok {
		return name
	}
	if c := r.registry.Find(name); c != nil {
		return c.Name
	}
	return name
}

func (r *Router) buildWaypoints(cities []string) []Waypoint {
	waypoints := make([]Waypoint, 0, len(cities))
	for _, city := range cities {
		if c := r.registry.Find(city); c != nil {
			waypoints = append(waypoints, Waypoint{City: city, Point: c.Location})
		}
	}
	return waypoints
}

// routeDistance sums the great-circle legs of the route. Legs touching a city
// without coordinates are left out and reported.
func (r *Router) routeDistance(route *Route) float64 {
	if km, err := capital.PathDistance(r.registry, route.Cities); err == nil {
		return km
	}
	total := 0.0
	for i := 0; i < len(route.Cities)-1; i++ {
		if km, err := capital.DistanceBetween(r.registry, route.Cities[i], route.Cities[i+1]); err == nil {
			total += km
		}
	}
	route.Warnings = append(route.Warnings, "distance leaves out legs without coordinates")
	return total
}

// GetCapitals returns all registered capitals in registration order.
func (r *Router) GetCapitals() []capital.Capital {
	return r.registry.Capitals()
}

func (r *Router) GetCapital(name string) (capital.Capital, error) {
	return r.registry.Lookup(name)
}

// GetCities returns the cities served by flights in index order.
func (r *Router) GetCities() []string {
	return graph.Cities(r.graph)
}

// NearestCapital finds the registered capital closest to the point.
func (r *Router) NearestCapital(point geometry.Point) (capital.Capital, bool) {
	return r.registry.Nearest(point)
}

func (r *Router) Distance(a, b string) (float64, error) {
	return capital.DistanceBetween(r.registry, a, b)
}
