package ingest

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/natevvv/capital-routing/pkg/graph"
)

const flightFields = 4 // source,destination,cost,duration

var (
	costPattern     = regexp.MustCompile(`^\$?\s*(\d+(?:\.\d+)?)$`)
	durationPattern = regexp.MustCompile(`^(\d+)\s*(?:min)?$`)
)

type Option func(*options)

type options struct {
	maxCities int
}

// WithMaxCities bounds the number of distinct cities of the loaded network.
// Flights that would exceed the bound are reported and skipped.
func WithMaxCities(n int) Option {
	return func(o *options) { o.maxCities = n }
}

// LoadFlights reads "source,destination,cost,duration[,...]" lines into a new network.
// Cost may carry a leading '$', duration a trailing "min".
func LoadFlights(r io.Reader, opts ...Option) (*graph.FlightNetwork, []ValidationError) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	network := graph.NewFlightNetwork(graph.WithMaxCities(o.maxCities))
	errs := LoadFlightsInto(network, r)
	return network, errs
}

// LoadFlightsInto adds the flights of r to an existing network.
func LoadFlightsInto(network graph.DynamicGraph, r io.Reader) []ValidationError {
	errs := make([]ValidationError, 0)
	scanLines(r, func(lineNumber int, line string) {
		if err := parseFlight(network, line); err != nil {
			errs = append(errs, ValidationError{Line: lineNumber, Text: line, Reason: err})
		}
	}, &errs)
	return errs
}

func parseFlight(network graph.DynamicGraph, line string) error {
	parts := splitFields(line)
	if len(parts) < flightFields {
		return malformed("expected %d fields, got %d", flightFields, len(parts))
	}

	source, destination := parts[0], parts[1]
	if source == "" || destination == "" {
		return malformed("empty city name")
	}
	if source == destination {
		return malformed("flight from %q to itself", source)
	}
	cost, err := ParseCost(parts[2])
	if err != nil {
		return err
	}
	duration, err := ParseDuration(parts[3])
	if err != nil {
		return err
	}

	if err := network.AddFlight(source, destination, cost, duration); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return nil
}

// ParseCost parses a non-negative amount with an optional '$' prefix, e.g. "$120.50".
func ParseCost(s string) (float64, error) {
	m := costPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, malformed("cost %q is not a non-negative amount", s)
	}
	cost, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, malformed("cost %q: %v", s, err)
	}
	return cost, nil
}

// ParseDuration parses a non-negative number of minutes with an optional "min" suffix, e.g. "95min".
func ParseDuration(s string) (int, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, malformed("duration %q is not a number of minutes", s)
	}
	duration, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, malformed("duration %q: %v", s, err)
	}
	return duration, nil
}
