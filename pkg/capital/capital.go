package capital

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/natevvv/capital-routing/pkg/geometry"
	"github.com/paulmach/orb"
)

var (
	ErrNotFound  = errors.New("capital: not found")
	ErrEmptyName = errors.New("capital: name is empty")
)

// Capital is a named point on the map. Values are immutable once registered.
type Capital struct {
	Name     string
	Location geometry.Point
	Geohash  string
}

func (c Capital) Lat() float64 { return c.Location.Lat() }
func (c Capital) Lon() float64 { return c.Location.Lon() }

func (c Capital) String() string {
	return c.Name
}

// Registry holds the capitals keyed by their case-folded name.
// It is not safe for concurrent writers; after loading it is only read.
type Registry struct {
	capitals []*Capital     // registration order
	index    map[string]int // case-folded name -> position in capitals
}

func NewRegistry() *Registry {
	return &Registry{
		capitals: make([]*Capital, 0),
		index:    make(map[string]int),
	}
}

// key folds a stored name. Stored names keep their surrounding whitespace.
func key(name string) string {
	return strings.ToLower(name)
}

// queryKey folds a lookup query, ignoring its surrounding whitespace.
func queryKey(name string) string {
	return key(strings.TrimSpace(name))
}

// Register creates or replaces the capital with the given name.
// Names are compared case-insensitively; the stored name is the one given last.
func (r *Registry) Register(name string, lat, lon float64) (Capital, error) {
	if strings.TrimSpace(name) == "" {
		return Capital{}, ErrEmptyName
	}
	k := key(name)
	p := geometry.MakePoint(lat, lon)
	if err := p.Validate(); err != nil {
		return Capital{}, fmt.Errorf("capital %q: %w", name, err)
	}

	c := &Capital{Name: name, Location: p, Geohash: p.Geohash()}
	if i, ok := r.index[k]; ok {
		r.capitals[i] = c
	} else {
		r.index[k] = len(r.capitals)
		r.capitals = append(r.capitals, c)
	}
	return *c, nil
}

// Lookup finds a capital ignoring case and surrounding whitespace of the query.
func (r *Registry) Lookup(name string) (Capital, error) {
	c := r.Find(name)
	if c == nil {
		return Capital{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return *c, nil
}

// Find returns the registered capital or nil. The result must not be modified.
func (r *Registry) Find(name string) *Capital {
	if r == nil {
		return nil
	}
	i, ok := r.index[queryKey(name)]
	if !ok {
		return nil
	}
	return r.capitals[i]
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.capitals)
}

// Capitals returns all capitals in registration order.
func (r *Registry) Capitals() []Capital {
	result := make([]Capital, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		result = append(result, *r.capitals[i])
	}
	return result
}

func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		names = append(names, r.capitals[i].Name)
	}
	return names
}

// Bound returns the bounding box of all capitals, or the zero bound if the registry is empty.
func (r *Registry) Bound() orb.Bound {
	if r.Len() == 0 {
		return orb.Bound{}
	}
	b := r.capitals[0].Location.Point.Bound()
	for _, c := range r.capitals[1:] {
		b = b.Extend(c.Location.Point)
	}
	return b
}

// Nearest returns the capital with the smallest great-circle distance to p.
func (r *Registry) Nearest(p geometry.Point) (Capital, bool) {
	if r.Len() == 0 {
		return Capital{}, false
	}

	minDist := math.MaxFloat64
	nearest := r.capitals[0]
	for _, c := range r.capitals {
		if dist := p.DistanceTo(c.Location); dist < minDist {
			minDist = dist
			nearest = c
		}
	}
	return *nearest, true
}

// InCell returns the capitals whose geohash starts with the given prefix.
func (r *Registry) InCell(prefix string) []Capital {
	prefix = strings.ToLower(prefix)
	cell := make([]Capital, 0)
	for i := 0; i < r.Len(); i++ {
		if strings.HasPrefix(r.capitals[i].Geohash, prefix) {
			cell = append(cell, *r.capitals[i])
		}
	}
	return cell
}
