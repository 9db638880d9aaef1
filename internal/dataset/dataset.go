package dataset

import (
	"fmt"
	"os"
	"sync"

	"github.com/natevvv/capital-routing/internal/pbf"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/natevvv/capital-routing/pkg/ingest"
	"go.uber.org/zap"
)

// Dataset is a registry and flight network loaded from files, together with
// the lines that were rejected on the way.
type Dataset struct {
	Registry      *capital.Registry
	Network       *graph.FlightNetwork
	CapitalErrors []ingest.ValidationError
	FlightErrors  []ingest.ValidationError
}

type Files struct {
	Capitals  string
	Flights   string
	PBF       string // optional OSM extract with additional capitals
	MaxCities int    // 0 means unbounded
}

// Load reads the capitals and flights files concurrently. Only failures to open
// a file are returned as errors; rejected lines are collected in the dataset.
func Load(files Files) (*Dataset, error) {
	ds := &Dataset{}
	var capitalsErr, flightsErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		file, err := os.Open(files.Capitals)
		if err != nil {
			capitalsErr = err
			return
		}
		defer file.Close()
		ds.Registry, ds.CapitalErrors = ingest.LoadCapitals(file)
	}()
	go func() {
		defer wg.Done()
		file, err := os.Open(files.Flights)
		if err != nil {
			flightsErr = err
			return
		}
		defer file.Close()
		ds.Network, ds.FlightErrors = ingest.LoadFlights(file, ingest.WithMaxCities(files.MaxCities))
	}()
	wg.Wait()

	if capitalsErr != nil {
		return nil, fmt.Errorf("load capitals: %w", capitalsErr)
	}
	if flightsErr != nil {
		return nil, fmt.Errorf("load flights: %w", flightsErr)
	}

	if files.PBF != "" {
		if _, err := MergePBF(ds.Registry, files.PBF); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// MergePBF adds the capitals of an OSM extract that are not yet registered.
func MergePBF(reg *capital.Registry, filename string) (*pbf.CapitalImporter, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load extract: %w", err)
	}
	defer file.Close()

	importer := pbf.NewCapitalImporter(file)
	if err := importer.Import(reg); err != nil {
		return nil, fmt.Errorf("load extract %s: %w", filename, err)
	}
	return importer, nil
}

// UnlocatedCities lists the cities of the network without a registry entry.
// Such cities can be routed through by cost and time but not by distance.
func (ds *Dataset) UnlocatedCities() []string {
	cities := make([]string, 0)
	for _, city := range graph.Cities(ds.Network) {
		if ds.Registry.Find(city) == nil {
			cities = append(cities, city)
		}
	}
	return cities
}

// Report logs a summary of the dataset and every rejected line at debug level.
func (ds *Dataset) Report(logger *zap.Logger) {
	for _, e := range ds.CapitalErrors {
		logger.Debug("rejected capital", zap.Int("line", e.Line), zap.String("text", e.Text), zap.Error(e.Reason))
	}
	for _, e := range ds.FlightErrors {
		logger.Debug("rejected flight", zap.Int("line", e.Line), zap.String("text", e.Text), zap.Error(e.Reason))
	}
	logger.Info("dataset loaded",
		zap.Int("capitals", ds.Registry.Len()),
		zap.Int("rejected_capitals", len(ds.CapitalErrors)),
		zap.Int("cities", ds.Network.NodeCount()),
		zap.Int("flights", ds.Network.FlightCount()),
		zap.Int("rejected_flights", len(ds.FlightErrors)),
		zap.Strings("unlocated_cities", ds.UnlocatedCities()))
}
