package path

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/natevvv/capital-routing/pkg/queue"
	"github.com/natevvv/capital-routing/pkg/slice"
	"go.uber.org/zap"
)

type Option func(*Dijkstra)

// WithLogger sets the logger for skipped flights. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dijkstra) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dijkstra runs single-source searches over a flight graph with the weights of one metric.
// A Dijkstra keeps the state of its last search and must not be shared between goroutines.
type Dijkstra struct {
	g                graph.Graph
	reg              *capital.Registry
	metric           Metric
	weight           WeightFunc
	needsCoordinates bool
	logger           *zap.Logger

	dijkstraItems []*queue.Item
	settled       []bool
	costs         []float64 // running cost along the current best path
	durations     []int     // running duration along the current best path
	capitals      []*capital.Capital
	resolved      []bool
	searchSpace   []graph.NodeId
	warnings      []string

	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int
	skippedEdges       int
}

func NewDijkstra(g graph.Graph, reg *capital.Registry, metric Metric, opts ...Option) *Dijkstra {
	d := &Dijkstra{
		g:                g,
		reg:              reg,
		metric:           metric,
		weight:           metric.Weight(),
		needsCoordinates: metric.NeedsCoordinates(),
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dijkstra) reset() {
	n := d.g.NodeCount()
	d.dijkstraItems = make([]*queue.Item, n)
	d.settled = make([]bool, n)
	d.costs = make([]float64, n)
	d.durations = make([]int, n)
	d.capitals = make([]*capital.Capital, n)
	d.resolved = make([]bool, n)
	d.searchSpace = make([]graph.NodeId, 0)
	d.warnings = nil

	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0
	d.skippedEdges = 0
}

// ComputeShortestPath returns the weight of the shortest path, or -1 if the destination is unreachable.
func (d *Dijkstra) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	length, _ := d.ComputeShortestPathContext(context.Background(), origin, destination)
	return length
}

// ComputeShortestPathContext is ComputeShortestPath with cancellation, checked before every node is settled.
func (d *Dijkstra) ComputeShortestPathContext(ctx context.Context, origin, destination graph.NodeId) (float64, error) {
	d.reset()
	if !d.contains(origin) || !d.contains(destination) {
		return -1, nil
	}

	originItem := queue.NewQueueItem(origin, 0, -1)
	d.dijkstraItems[origin] = originItem
	pq := queue.NewQueue(originItem)

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		currentPqItem := heap.Pop(pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.pqPops++
		d.settled[currentNodeId] = true
		d.searchSpace = append(d.searchSpace, currentNodeId)

		if currentNodeId == destination {
			break
		}

		for _, arc := range d.g.GetArcsFrom(currentNodeId) {
			d.relaxationAttempts++
			successor := arc.Destination()
			if d.settled[successor] {
				continue
			}

			var from, to *capital.Capital
			if d.needsCoordinates {
				from, to = d.capital(currentNodeId), d.capital(successor)
				if from == nil || to == nil {
					d.skip(currentNodeId, successor)
					continue
				}
			}

			newPriority := currentPqItem.Priority + d.weight(arc, from, to)
			if d.dijkstraItems[successor] == nil {
				pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId)
				d.dijkstraItems[successor] = pqItem
				heap.Push(pq, pqItem)
			} else if newPriority < d.dijkstraItems[successor].Priority {
				d.dijkstraItems[successor].Predecessor = currentNodeId
				pq.Update(d.dijkstraItems[successor], newPriority)
			} else {
				continue
			}
			d.pqUpdates++
			d.relaxedEdges++

			// cost and duration follow the chosen path whatever the metric
			d.costs[successor] = d.costs[currentNodeId] + arc.Cost
			d.durations[successor] = d.durations[currentNodeId] + arc.Duration
		}
	}

	length := -1.0 // by default a non-existing path has length -1
	if d.dijkstraItems[destination] != nil && d.settled[destination] {
		length = d.dijkstraItems[destination].Priority
	}
	return length, nil
}

func (d *Dijkstra) contains(id graph.NodeId) bool {
	return id >= 0 && id < d.g.NodeCount()
}

// capital resolves the registry entry of a city once per search.
func (d *Dijkstra) capital(id graph.NodeId) *capital.Capital {
	if !d.resolved[id] {
		d.capitals[id] = d.reg.Find(d.g.CityName(id))
		d.resolved[id] = true
	}
	return d.capitals[id]
}

func (d *Dijkstra) skip(from, to graph.NodeId) {
	d.skippedEdges++
	source, destination := d.g.CityName(from), d.g.CityName(to)
	missing := destination
	if d.capitals[from] == nil {
		missing = source
	}
	if warning := fmt.Sprintf("flight %s-%s ignored for %s: %s has no coordinates", source, destination, d.metric, missing); !slice.Contains(d.warnings, warning) {
		d.warnings = append(d.warnings, warning)
	}
	d.logger.Debug("skipping flight without coordinates",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.String("missing", missing))
}

// GetPath returns the node ids from origin to destination found by the previous search,
// or an empty slice if there is none.
func (d *Dijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0) // by default, a non-existing path is an empty slice
	if !d.contains(destination) || d.dijkstraItems[destination] == nil || !d.settled[destination] {
		return path
	}
	for nodeId := destination; nodeId != -1; nodeId = d.dijkstraItems[nodeId].Predecessor {
		path = append(path, nodeId)
	}
	slice.ReverseInPlace(path)
	if path[0] != origin {
		return make([]graph.NodeId, 0)
	}
	return path
}

// GetCost returns the accumulated cost to a node reached by the previous search.
func (d *Dijkstra) GetCost(id graph.NodeId) float64 { return d.costs[id] }

// GetDuration returns the accumulated duration in minutes to a node reached by the previous search.
func (d *Dijkstra) GetDuration(id graph.NodeId) int { return d.durations[id] }

func (d *Dijkstra) GetWarnings() []string {
	return append([]string(nil), d.warnings...)
}

func (d *Dijkstra) GetSearchSpace() []graph.NodeId { return d.searchSpace }
func (d *Dijkstra) GetPqPops() int                 { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int              { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int        { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int     { return d.relaxationAttempts }
func (d *Dijkstra) GetSkippedEdges() int           { return d.skippedEdges }
func (d *Dijkstra) GetMetric() Metric              { return d.metric }
func (d *Dijkstra) GetGraph() graph.Graph          { return d.g }
