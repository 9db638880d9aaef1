package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/natevvv/capital-routing/internal/logging"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/natevvv/capital-routing/pkg/ingest"
	"go.uber.org/zap"
)

func main() {
	flightsFile := flag.String("flights", "flights.txt", "Flights file to validate")
	capitalsFile := flag.String("capitals", "", "Capitals file used to report cities without coordinates")
	outputFile := flag.String("o", "", "Write the normalized flights to this file")
	dumpFile := flag.String("dump", "", "Write the indexed network (cities and arcs) to this file")
	maxCities := flag.Int("max-cities", 0, "Maximum number of cities (0 = unbounded)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	start := time.Now()
	file, err := os.Open(*flightsFile)
	if err != nil {
		logger.Fatal("could not open flights", zap.Error(err))
	}
	network, errs := ingest.LoadFlights(file, ingest.WithMaxCities(*maxCities))
	file.Close()
	fmt.Printf("[TIME] Import flights: %s\n", time.Since(start))
	fmt.Printf("Cities: %d\n", network.NodeCount())
	fmt.Printf("Flights: %d\n", network.FlightCount())
	fmt.Printf("Rejected lines: %d\n", len(errs))
	for _, e := range errs {
		logger.Warn("rejected flight", zap.Int("line", e.Line), zap.String("text", e.Text), zap.Error(e.Reason))
	}

	if *capitalsFile != "" {
		reportUnlocated(network, *capitalsFile, logger)
	}

	if *outputFile != "" {
		start = time.Now()
		if err := graph.WriteFlightsFile(network, *outputFile); err != nil {
			logger.Fatal("could not write flights", zap.Error(err))
		}
		fmt.Printf("[TIME] Export flights: %s\n", time.Since(start))
	}

	if *dumpFile != "" {
		if err := os.WriteFile(*dumpFile, []byte(network.Freeze().AsString()), 0o644); err != nil {
			logger.Fatal("could not write network dump", zap.Error(err))
		}
	}

	if len(errs) > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

func reportUnlocated(network graph.Graph, capitalsFile string, logger *zap.Logger) {
	file, err := os.Open(capitalsFile)
	if err != nil {
		logger.Fatal("could not open capitals", zap.Error(err))
	}
	defer file.Close()

	reg, errs := ingest.LoadCapitals(file)
	if len(errs) > 0 {
		logger.Warn("capitals rejected", zap.Error(ingest.Join(errs)))
	}

	unlocated := 0
	for _, city := range graph.Cities(network) {
		if reg.Find(city) == nil {
			unlocated++
			logger.Warn("city has no coordinates", zap.String("city", city))
		}
	}
	fmt.Printf("Cities without coordinates: %d\n", unlocated)
}
