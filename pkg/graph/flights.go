package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FormatFlight renders a flight as a line of the flights text format:
// "source,destination,$cost,<duration>min".
func FormatFlight(f Flight) string {
	return fmt.Sprintf("%s,%s,$%s,%dmin", f.Source, f.Destination, strconv.FormatFloat(f.Cost, 'f', -1, 64), f.Duration)
}

// WriteFlights writes every flight of g once, in the format read by ingest.LoadFlights.
func WriteFlights(g Graph, w io.Writer) error {
	writer := bufio.NewWriter(w)
	for _, f := range Flights(g) {
		if _, err := writer.WriteString(FormatFlight(f) + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func WriteFlightsFile(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteFlights(g, file); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return file.Close()
}
