package pbf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/natevvv/capital-routing/pkg/capital"
)

// ExportCapitals writes the registry as "name,latitude,longitude" lines.
func ExportCapitals(reg *capital.Registry, w io.Writer) error {
	writer := bufio.NewWriter(w)
	for _, c := range reg.Capitals() {
		line := c.Name + "," + strconv.FormatFloat(c.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon(), 'f', -1, 64) + "\n"
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func ExportCapitalsFile(reg *capital.Registry, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := ExportCapitals(reg, file); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return file.Close()
}
