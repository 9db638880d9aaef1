package path

import (
	"errors"
	"fmt"
	"strings"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
)

var ErrUnknownMetric = errors.New("path: unknown metric")

// Metric selects how an arc is weighted during a search.
type Metric int

const (
	Distance Metric = iota // great-circle km between the endpoint capitals
	Cost                   // ticket price of the flight
	Time                   // flight duration in minutes
)

var metricNames = [...]string{Distance: "distance", Cost: "cost", Time: "time"}

// labels used by front ends for the three options
var metricLabels = map[string]Metric{
	"shortest distance": Distance,
	"less cost":         Cost,
	"less time":         Time,
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

func (m Metric) Valid() bool {
	return m >= Distance && m <= Time
}

// ParseMetric accepts "distance", "cost", "time" and the labels
// "Shortest Distance", "Less Cost", "Less Time", ignoring case.
func ParseMetric(s string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range metricNames {
		if key == name {
			return Metric(m), nil
		}
	}
	if m, ok := metricLabels[key]; ok {
		return m, nil
	}
	return Distance, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// WeightFunc weighs the arc between two cities. The capitals are nil unless
// the metric needs coordinates.
type WeightFunc func(arc graph.Arc, from, to *capital.Capital) float64

// NeedsCoordinates reports whether arcs can only be weighed when both
// endpoints are registered capitals.
func (m Metric) NeedsCoordinates() bool {
	return m != Cost && m != Time
}

// Weight returns the weight function of the metric. Unknown metrics weigh like Distance.
func (m Metric) Weight() WeightFunc {
	switch m {
	case Cost:
		return costWeight
	case Time:
		return timeWeight
	default:
		return distanceWeight
	}
}

func distanceWeight(_ graph.Arc, from, to *capital.Capital) float64 {
	return capital.GreatCircleDistance(*from, *to)
}

func costWeight(arc graph.Arc, _, _ *capital.Capital) float64 {
	return arc.Cost
}

func timeWeight(arc graph.Arc, _, _ *capital.Capital) float64 {
	return float64(arc.Duration)
}
