package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/natevvv/capital-routing/internal/dataset"
	"github.com/natevvv/capital-routing/internal/logging"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
	p "github.com/natevvv/capital-routing/pkg/graph/path"
	"go.uber.org/zap"
)

// target: origin, destination, reference length, #hops (nodes from source to target)
type target struct {
	origin      graph.NodeId
	destination graph.NodeId
	length      float64
	hops        int
}

func main() {
	capitalsFile := flag.String("capitals", "capitals.txt", "Capitals file")
	flightsFile := flag.String("flights", "flights.txt", "Flights file")
	metricName := flag.String("metric", "distance", "Metric to optimize: distance, cost or time")
	useRandomTargets := flag.Bool("random", false, "Create (new) random targets")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	seed := flag.Int64("seed", 0, "Seed for random targets (0 = current time)")
	targetFile := flag.String("targets", "targets.txt", "File to read targets from or store them to")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	metric, err := p.ParseMetric(*metricName)
	if err != nil {
		logger.Fatal("invalid metric", zap.Error(err))
	}

	start := time.Now()
	ds, err := dataset.Load(dataset.Files{Capitals: *capitalsFile, Flights: *flightsFile})
	if err != nil {
		logger.Fatal("could not load dataset", zap.Error(err))
	}
	ds.Report(logger)
	frozen := ds.Network.Freeze()
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))

	// the mutable network answers the reference queries, the frozen one is benchmarked
	referenceDijkstra := p.NewDijkstra(ds.Network, ds.Registry, metric)
	navigator := p.NewDijkstra(frozen, ds.Registry, metric, p.WithLogger(logger))

	var targets []target
	if *useRandomTargets {
		targets = createTargets(*amountTargets, *seed, referenceDijkstra)
		if *storeTargets {
			if err := writeTargets(targets, *targetFile); err != nil {
				logger.Fatal("could not store targets", zap.Error(err))
			}
		}
	} else {
		targets, err = readTargets(*targetFile, frozen.NodeCount())
		if err != nil {
			logger.Fatal("could not read targets", zap.Error(err))
		}
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}
	if len(targets) == 0 {
		logger.Fatal("no targets")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal("could not create cpu profile", zap.Error(err))
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(navigator, targets, ds.Registry)
}

func readTargets(filename string, nodeCount int) ([]target, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %g %d", &t.origin, &t.destination, &t.length, &t.hops); err != nil {
			return nil, fmt.Errorf("%s: %q: %w", filename, line, err)
		}
		if t.origin < 0 || t.origin >= nodeCount || t.destination < 0 || t.destination >= nodeCount {
			return nil, fmt.Errorf("%s: %q: city index out of range", filename, line)
		}
		targets = append(targets, t)
	}
	return targets, scanner.Err()
}

func createTargets(n int, seed int64, referenceNavigator *p.Dijkstra) []target {
	targets := make([]target, n)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	nodeCount := referenceNavigator.GetGraph().NodeCount()
	// reference algorithm to compute path
	for i := 0; i < n; i++ {
		origin := rng.Intn(nodeCount)
		destination := rng.Intn(nodeCount)
		length := referenceNavigator.ComputeShortestPath(origin, destination)
		hops := len(referenceNavigator.GetPath(origin, destination))
		targets[i] = target{origin: origin, destination: destination, length: length, hops: hops}
	}
	return targets
}

func writeTargets(targets []target, targetFile string) error {
	var sb strings.Builder
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%v %v %v %v\n", t.origin, t.destination, t.length, t.hops))
	}

	file, err := os.Create(targetFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(sb.String()); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// Run benchmarks on the provided graph and targets
func benchmark(navigator p.Navigator, targets []target, reg *capital.Registry) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	edgeRelaxations := 0
	relaxationAttempts := 0
	skippedEdges := 0
	totalKm := 0.0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)

	showResults := func() {
		if completed == 0 {
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000, float64(int(runtimeWithPathExtraction.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)
		fmt.Printf("Average skipped flights: %d\n", skippedEdges/completed)
		fmt.Printf("Average route distance: %.1fkm\n", totalKm/float64(completed))

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, result := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, result, targets[result].origin, targets[result].destination)
		}

		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length. Reference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, targets[testcase].length)
		}

		fmt.Printf("%v/%v invalid hops number.\n", len(invalidHops), completed)
		for i, testcase := range invalidHops {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid #hops. Reference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, targets[testcase].hops)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	g := navigator.GetGraph()
	for i, t := range targets {
		start := time.Now()
		length := navigator.ComputeShortestPath(t.origin, t.destination)
		elapsed := time.Since(start)

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()
		skippedEdges += navigator.GetSkippedEdges()

		path := navigator.GetPath(t.origin, t.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %12s, %7d, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		if math.Abs(length-t.length) > 1e-6 {
			invalidLengths = append(invalidLengths, i)
		}
		if length > -1 && (path[0] != t.origin || path[len(path)-1] != t.destination) {
			invalidResults = append(invalidResults, i)
		}
		if t.hops != len(path) {
			invalidHops = append(invalidHops, i)
		}

		if len(path) > 1 {
			cities := make([]string, len(path))
			for j, id := range path {
				cities[j] = g.CityName(id)
			}
			if km, err := capital.PathDistance(reg, cities); err == nil {
				totalKm += km
			}
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}
