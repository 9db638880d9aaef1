package graph

import (
	"fmt"
)

// Implementation for static graphs. Arcs of city i are arcs[Offsets[i]:Offsets[i+1]].
type AdjacencyArrayGraph struct {
	Cities  []string
	index   map[string]NodeId
	arcs    []Arc
	Offsets []int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	cities := make([]string, 0, g.NodeCount())
	index := make(map[string]NodeId, g.NodeCount())
	arcs := make([]Arc, 0, g.ArcCount())
	offsets := make([]int, g.NodeCount()+1)

	for i := 0; i < g.NodeCount(); i++ {
		// add city
		name := g.CityName(i)
		cities = append(cities, name)
		index[name] = i

		// add all arcs of city
		arcs = append(arcs, g.GetArcsFrom(i)...)

		// set stop-offset
		offsets[i+1] = len(arcs)
	}

	return &AdjacencyArrayGraph{Cities: cities, index: index, arcs: arcs, Offsets: offsets}
}

// Get the Arcs for the given city index
func (aag *AdjacencyArrayGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	// cap the slice so appends by callers cannot overwrite the next city's arcs
	return aag.arcs[aag.Offsets[id]:aag.Offsets[id+1]:aag.Offsets[id+1]]
}

func (aag *AdjacencyArrayGraph) CityIndex(name string) (NodeId, bool) {
	id, ok := aag.index[name]
	return id, ok
}

func (aag *AdjacencyArrayGraph) CityName(id NodeId) string {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return aag.Cities[id]
}

// Returns the number of cities in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.Cities)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

func (aag *AdjacencyArrayGraph) DirectFlight(source, destination string) (Flight, bool) {
	return DirectFlight(aag, source, destination)
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}
