package pbf

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/qedus/osmpbf"
)

var (
	ErrNoName           = errors.New("pbf: capital node has no name")
	ErrDuplicateCapital = errors.New("pbf: capital already registered")
)

// RejectedNode is a capital node of the extract that could not be registered.
type RejectedNode struct {
	ID     int64
	Name   string
	Reason error
}

func (r RejectedNode) Error() string {
	return fmt.Sprintf("node %d (%s): %v", r.ID, r.Name, r.Reason)
}

func (r RejectedNode) Unwrap() error {
	return r.Reason
}

// CapitalImporter collects national capitals (nodes tagged capital=yes or capital=2)
// from an OSM PBF stream.
type CapitalImporter struct {
	reader   io.Reader
	imported int
	rejected []RejectedNode
}

func NewCapitalImporter(r io.Reader) *CapitalImporter {
	return &CapitalImporter{
		reader:   r,
		rejected: make([]RejectedNode, 0),
	}
}

// Import registers every capital node of the stream. Capitals that are already
// registered keep their entry.
func (ci *CapitalImporter) Import(reg *capital.Registry) error {
	decoder := osmpbf.NewDecoder(ci.reader)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	err := decoder.Start(runtime.GOMAXPROCS(-1))
	if err != nil {
		return fmt.Errorf("pbf: start decoder: %w", err)
	}

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pbf: decode: %w", err)
		}
		if node, ok := v.(*osmpbf.Node); ok {
			ci.importNode(reg, node)
		}
	}
}

func (ci *CapitalImporter) importNode(reg *capital.Registry, node *osmpbf.Node) {
	if !isCapital(node.Tags) {
		return
	}
	name := capitalName(node.Tags)
	if name == "" {
		ci.reject(node.ID, name, ErrNoName)
		return
	}
	if reg.Find(name) != nil {
		ci.reject(node.ID, name, ErrDuplicateCapital)
		return
	}
	if _, err := reg.Register(name, node.Lat, node.Lon); err != nil {
		ci.reject(node.ID, name, err)
		return
	}
	ci.imported++
}

func (ci *CapitalImporter) reject(id int64, name string, reason error) {
	ci.rejected = append(ci.rejected, RejectedNode{ID: id, Name: name, Reason: reason})
}

func (ci *CapitalImporter) Imported() int {
	return ci.imported
}

func (ci *CapitalImporter) Rejected() []RejectedNode {
	return ci.rejected
}

// national capitals only; lower admin levels tag their own level
func isCapital(tags map[string]string) bool {
	switch tags["capital"] {
	case "yes", "2":
		return true
	default:
		return false
	}
}

func capitalName(tags map[string]string) string {
	if name := tags["name:en"]; name != "" {
		return name
	}
	return tags["name"]
}
