package graph

import (
	"errors"
	"fmt"
	"strings"
)

type NodeId = int

var (
	ErrUnknownCity    = errors.New("graph: unknown city")
	ErrEmptyCity      = errors.New("graph: city name is empty")
	ErrSelfFlight     = errors.New("graph: source and destination are the same city")
	ErrNegativeWeight = errors.New("graph: cost and duration must be non-negative")
	ErrCityLimit      = errors.New("graph: city limit reached")
)

// Graph is the read side of a flight network. Every flight is stored as two
// arcs, one per direction, carrying the same cost and duration.
type Graph interface {
	GetArcsFrom(id NodeId) []Arc
	CityIndex(name string) (NodeId, bool)
	CityName(id NodeId) string
	NodeCount() int
	ArcCount() int
	AsString() string
}

type DynamicGraph interface {
	Graph
	AddCity(name string) (NodeId, error)
	AddFlight(source, destination string, cost float64, duration int) error
}

// Flight is a single undirected route between two cities.
type Flight struct {
	Source      string
	Destination string
	Cost        float64 // currency units
	Duration    int     // minutes
}

// DirectFlight returns the flight from source to destination if both cities are
// indexed and an arc connects them. Names are matched exactly.
func DirectFlight(g Graph, source, destination string) (Flight, bool) {
	from, ok := g.CityIndex(source)
	if !ok {
		return Flight{}, false
	}
	to, ok := g.CityIndex(destination)
	if !ok {
		return Flight{}, false
	}
	for _, arc := range g.GetArcsFrom(from) {
		if arc.To == to {
			return arc.Flight(g.CityName(from), g.CityName(to)), true
		}
	}
	return Flight{}, false
}

// Flights lists every undirected flight once, ordered by the index of the
// lower endpoint and then by arc order.
func Flights(g Graph) []Flight {
	flights := make([]Flight, 0, g.ArcCount()/2)
	for i := 0; i < g.NodeCount(); i++ {
		for _, arc := range g.GetArcsFrom(i) {
			if arc.To > i {
				flights = append(flights, arc.Flight(g.CityName(i), g.CityName(arc.To)))
			}
		}
	}
	return flights
}

// Cities returns all city names ordered by index.
func Cities(g Graph) []string {
	cities := make([]string, g.NodeCount())
	for i := range cities {
		cities[i] = g.CityName(i)
	}
	return cities
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of cities and number of arcs
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Cities\n")
	// list all cities structured as "id name"
	for i := 0; i < g.NodeCount(); i++ {
		sb.WriteString(fmt.Sprintf("%v %v\n", i, g.CityName(i)))
	}

	sb.WriteString("#Arcs\n")
	// list all arcs structured as "fromId targetId cost duration"
	for i := 0; i < g.NodeCount(); i++ {
		for _, arc := range g.GetArcsFrom(i) {
			sb.WriteString(fmt.Sprintf("%v %v %v %v\n", i, arc.Destination(), arc.Cost, arc.Duration))
		}
	}
	return sb.String()
}
