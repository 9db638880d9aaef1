package path

import "github.com/natevvv/capital-routing/pkg/graph"

type Navigator interface {
	GetPath(origin, destination int) []int               // Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination
	ComputeShortestPath(origin, destination int) float64 // Compute the shortest path from the origin to the destination, -1 if there is none
	GetCost(id int) float64                              // Accumulated cost to a node of the previous computation
	GetDuration(id int) int                              // Accumulated duration to a node of the previous computation
	GetSearchSpace() []int                               // Returns the nodes settled during the previous computation, in settle order
	GetPqPops() int                                      // Returns the amount of priority queue/heap pops which werer performed during the search
	GetPqUpdates() int                                   // Get the number of pq updates
	GetEdgeRelaxations() int                             // Get the number of relaxed edges
	GetRelaxationAttempts() int                          // Get the number of attempted edge relaxations (some may early terminated)
	GetSkippedEdges() int                                // Get the number of flights ignored for missing coordinates
	GetGraph() graph.Graph                               // Get the used graph
}

var _ Navigator = (*Dijkstra)(nil)
