package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/natevvv/capital-routing/pkg/capital"
)

const capitalFields = 3 // name,latitude,longitude

// LoadCapitals reads "name,latitude,longitude[,...]" lines into a new registry.
// Malformed lines are skipped and reported; the function never fails as a whole.
func LoadCapitals(r io.Reader) (*capital.Registry, []ValidationError) {
	reg := capital.NewRegistry()
	errs := LoadCapitalsInto(reg, r)
	return reg, errs
}

// LoadCapitalsInto adds the capitals of r to an existing registry.
func LoadCapitalsInto(reg *capital.Registry, r io.Reader) []ValidationError {
	errs := make([]ValidationError, 0)
	scanLines(r, func(lineNumber int, line string) {
		if err := parseCapital(reg, line); err != nil {
			errs = append(errs, ValidationError{Line: lineNumber, Text: line, Reason: err})
		}
	}, &errs)
	return errs
}

func parseCapital(reg *capital.Registry, line string) error {
	parts := splitFields(line)
	if len(parts) < capitalFields {
		return malformed("expected %d fields, got %d", capitalFields, len(parts))
	}

	name := parts[0]
	if name == "" {
		return malformed("empty capital name")
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return malformed("latitude %q is not a number", parts[1])
	}
	lon, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return malformed("longitude %q is not a number", parts[2])
	}

	if _, err := reg.Register(name, lat, lon); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return nil
}

// scanLines calls fn for every line that carries data. Blank lines and lines
// starting with '#' are skipped. Lines have no length limit. A reader failure
// is appended to errs and ends the scan.
func scanLines(r io.Reader, fn func(lineNumber int, line string), errs *[]ValidationError) {
	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNumber++
			line = strings.TrimRight(line, "\r\n")
			if trimmed := strings.TrimSpace(line); trimmed != "" && trimmed[0] != '#' {
				fn(lineNumber, line)
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			*errs = append(*errs, ValidationError{Line: lineNumber + 1, Reason: fmt.Errorf("%w: %w", ErrRead, err)})
			return
		}
	}
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
