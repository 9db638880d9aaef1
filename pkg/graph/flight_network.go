package graph

import (
	"fmt"
	"math"
	"strings"
)

// FlightNetwork is the mutable flight graph built during ingestion.
// City names get dense indices on first encounter; arcs live in per-city adjacency lists.
type FlightNetwork struct {
	cities    []string          // index -> city name
	index     map[string]NodeId // city name -> index, exact match
	edges     [][]Arc           // index -> outgoing arcs, kept symmetric by AddFlight
	arcCount  int               // the number of arcs in the graph
	maxCities int               // 0 means unbounded
}

type NetworkOption func(*FlightNetwork)

// WithMaxCities bounds the number of distinct cities the network accepts.
func WithMaxCities(n int) NetworkOption {
	return func(fn *FlightNetwork) {
		if n > 0 {
			fn.maxCities = n
		}
	}
}

func NewFlightNetwork(opts ...NetworkOption) *FlightNetwork {
	fn := &FlightNetwork{
		cities: make([]string, 0),
		index:  make(map[string]NodeId),
		edges:  make([][]Arc, 0),
	}
	for _, opt := range opts {
		opt(fn)
	}
	return fn
}

// Return the arcs for the given city index
func (fn *FlightNetwork) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= fn.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return fn.edges[id]
}

func (fn *FlightNetwork) CityIndex(name string) (NodeId, bool) {
	id, ok := fn.index[name]
	return id, ok
}

func (fn *FlightNetwork) CityName(id NodeId) string {
	if id < 0 || id >= fn.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return fn.cities[id]
}

// Return the number of indexed cities
func (fn *FlightNetwork) NodeCount() int {
	return len(fn.cities)
}

// Return the number of arcs, two per flight
func (fn *FlightNetwork) ArcCount() int {
	return fn.arcCount
}

func (fn *FlightNetwork) FlightCount() int {
	return fn.arcCount / 2
}

func (fn *FlightNetwork) MaxCities() int {
	return fn.maxCities
}

func (fn *FlightNetwork) AsString() string {
	return GraphAsString(fn)
}

func (fn *FlightNetwork) DirectFlight(source, destination string) (Flight, bool) {
	return DirectFlight(fn, source, destination)
}

// AddCity returns the index of the city, assigning the next free one if the name is new.
func (fn *FlightNetwork) AddCity(name string) (NodeId, error) {
	if strings.TrimSpace(name) == "" {
		return -1, ErrEmptyCity
	}
	if id, ok := fn.index[name]; ok {
		return id, nil
	}
	if fn.maxCities > 0 && fn.NodeCount() >= fn.maxCities {
		return -1, fmt.Errorf("%w (%d): %q", ErrCityLimit, fn.maxCities, name)
	}
	id := len(fn.cities)
	fn.cities = append(fn.cities, name)
	fn.edges = append(fn.edges, make([]Arc, 0))
	fn.index[name] = id
	return id, nil
}

// AddFlight records an undirected flight. Both endpoints are indexed first if
// needed. Adding a flight between an already connected pair replaces it.
// On error the network is left unchanged.
func (fn *FlightNetwork) AddFlight(source, destination string, cost float64, duration int) error {
	if strings.TrimSpace(source) == "" || strings.TrimSpace(destination) == "" {
		return ErrEmptyCity
	}
	if source == destination {
		return fmt.Errorf("%w: %q", ErrSelfFlight, source)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 || duration < 0 {
		return fmt.Errorf("%w: cost %v, duration %v", ErrNegativeWeight, cost, duration)
	}

	// check the limit for both endpoints up front so a half-added flight never happens
	missing := 0
	if _, ok := fn.index[source]; !ok {
		missing++
	}
	if _, ok := fn.index[destination]; !ok {
		missing++
	}
	if fn.maxCities > 0 && fn.NodeCount()+missing > fn.maxCities {
		return fmt.Errorf("%w (%d): %q - %q", ErrCityLimit, fn.maxCities, source, destination)
	}

	from, err := fn.AddCity(source)
	if err != nil {
		return err
	}
	to, err := fn.AddCity(destination)
	if err != nil {
		return err
	}

	fn.setArc(from, to, cost, duration)
	fn.setArc(to, from, cost, duration)
	return nil
}

func (fn *FlightNetwork) setArc(from, to NodeId, cost float64, duration int) {
	arcs := fn.edges[from]
	for i := range arcs {
		if arcs[i].To == to {
			arcs[i].Cost = cost
			arcs[i].Duration = duration
			return
		}
	}
	fn.edges[from] = append(fn.edges[from], MakeArc(to, cost, duration))
	fn.arcCount++
}

// Freeze returns an immutable compact copy of the network for concurrent readers.
func (fn *FlightNetwork) Freeze() *AdjacencyArrayGraph {
	return NewAdjacencyArrayFromGraph(fn)
}
