package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/natevvv/capital-routing/internal/dataset"
	"github.com/natevvv/capital-routing/internal/logging"
	"github.com/natevvv/capital-routing/internal/pbf"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/ingest"
	"go.uber.org/zap"
)

var flagPbfFile = flag.String("f", "planet.osm.pbf", "OSM PBF extract")
var flagBaseFile = flag.String("capitals", "", "Existing capitals file; its entries take precedence")
var flagOutputFile = flag.String("o", "capitals.txt", "Output capitals file")
var flagDebug = flag.Bool("debug", false, "Enable debug logging")

func main() {
	flag.Parse()

	logger, err := logging.New(*flagDebug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	reg := capital.NewRegistry()
	if *flagBaseFile != "" {
		file, err := os.Open(*flagBaseFile)
		if err != nil {
			logger.Fatal("could not open capitals", zap.Error(err))
		}
		var errs []ingest.ValidationError
		reg, errs = ingest.LoadCapitals(file)
		file.Close()
		for _, e := range errs {
			logger.Warn("rejected capital", zap.Int("line", e.Line), zap.Error(e.Reason))
		}
	}

	start := time.Now()

	importer, err := dataset.MergePBF(reg, *flagPbfFile)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	elapsed := time.Since(start)
	fmt.Printf("[TIME] Import: %s\n", elapsed)
	fmt.Printf("Imported capitals: %d\n", importer.Imported())
	fmt.Printf("Rejected capitals: %d\n", len(importer.Rejected()))
	for _, rejected := range importer.Rejected() {
		logger.Debug("rejected node", zap.Int64("id", rejected.ID), zap.String("name", rejected.Name), zap.Error(rejected.Reason))
	}

	start = time.Now()

	if err := pbf.ExportCapitalsFile(reg, *flagOutputFile); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	elapsed = time.Since(start)
	fmt.Printf("[TIME] Export: %s\n", elapsed)
	fmt.Printf("Exported %d capitals to %s\n", reg.Len(), *flagOutputFile)
}
