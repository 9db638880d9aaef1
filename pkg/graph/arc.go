package graph

// Arc is one direction of a flight, stored in the adjacency of its origin.
type Arc struct {
	To       NodeId
	Cost     float64
	Duration int
}

func MakeArc(to NodeId, cost float64, duration int) Arc {
	return Arc{To: to, Cost: cost, Duration: duration}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Flight(source, destination string) Flight {
	return Flight{Source: source, Destination: destination, Cost: a.Cost, Duration: a.Duration}
}
