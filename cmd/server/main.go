package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/capital-routing/internal/dataset"
	"github.com/natevvv/capital-routing/internal/logging"
	"github.com/natevvv/capital-routing/pkg/routing"
	"github.com/natevvv/capital-routing/pkg/server/openapi_server"
	"go.uber.org/zap"
)

func main() {
	capitalsFile := flag.String("capitals", "capitals.txt", "Capitals file (name,latitude,longitude)")
	flightsFile := flag.String("flights", "flights.txt", "Flights file (source,destination,cost,duration)")
	pbfFile := flag.String("pbf", "", "Optional OSM PBF extract with additional capitals")
	addr := flag.String("addr", ":8081", "Listen address")
	maxCities := flag.Int("max-cities", 0, "Maximum number of cities in the flight network (0 = unbounded)")
	cacheSize := flag.Int("cache", routing.DefaultCacheSize, "Number of cached routes (0 = no cache)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	start := time.Now()
	ds, err := dataset.Load(dataset.Files{Capitals: *capitalsFile, Flights: *flightsFile, PBF: *pbfFile, MaxCities: *maxCities})
	if err != nil {
		logger.Fatal("could not load dataset", zap.Error(err))
	}
	ds.Report(logger)
	logger.Info("import finished", zap.Duration("took", time.Since(start)))

	router, err := routing.NewRouter(ds.Network.Freeze(), ds.Registry, routing.WithCacheSize(*cacheSize), routing.WithLogger(logger))
	if err != nil {
		logger.Fatal("could not create router", zap.Error(err))
	}

	DefaultApiService := openapi_server.NewDefaultApiService(router, logger)
	DefaultApiController := openapi_server.NewDefaultApiController(DefaultApiService)

	server := &http.Server{
		Addr:              *addr,
		Handler:           openapi_server.NewRouter(logger, DefaultApiController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", *addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
