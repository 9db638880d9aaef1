package path

import (
	"context"
	"fmt"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
)

// PathResult is the outcome of a route query. An empty Path means there is no route.
type PathResult struct {
	Path          []string
	TotalCost     float64
	TotalDuration int // minutes
	Warnings      []string
}

func (r PathResult) Len() int    { return len(r.Path) }
func (r PathResult) Found() bool { return len(r.Path) > 0 }

// FindPath searches the cheapest route between two cities of g under the metric.
// Cities are resolved by exact name in g; reg only provides coordinates.
// Unknown or unreachable cities yield an empty result.
func FindPath(g graph.Graph, reg *capital.Registry, source, destination string, metric Metric, opts ...Option) PathResult {
	result, _ := FindPathContext(context.Background(), g, reg, source, destination, metric, opts...)
	return result
}

// FindPathContext is FindPath with cancellation. The only error it returns is the context's.
func FindPathContext(ctx context.Context, g graph.Graph, reg *capital.Registry, source, destination string, metric Metric, opts ...Option) (PathResult, error) {
	origin, ok := g.CityIndex(source)
	if !ok {
		return PathResult{Warnings: []string{notInNetwork(source)}}, nil
	}
	target, ok := g.CityIndex(destination)
	if !ok {
		return PathResult{Warnings: []string{notInNetwork(destination)}}, nil
	}

	d := NewDijkstra(g, reg, metric, opts...)
	length, err := d.ComputeShortestPathContext(ctx, origin, target)
	if err != nil {
		return PathResult{}, err
	}
	warnings := d.GetWarnings()
	if length < 0 {
		return PathResult{Warnings: warnings}, nil
	}

	ids := d.GetPath(origin, target)
	cities := make([]string, len(ids))
	for i, id := range ids {
		cities[i] = g.CityName(id)
		if reg.Find(cities[i]) == nil {
			warnings = append(warnings, fmt.Sprintf("%s on the route is not a registered capital", cities[i]))
		}
	}
	return PathResult{
		Path:          cities,
		TotalCost:     d.GetCost(target),
		TotalDuration: d.GetDuration(target),
		Warnings:      warnings,
	}, nil
}

func notInNetwork(city string) string {
	return fmt.Sprintf("%s is not served by any flight", city)
}
