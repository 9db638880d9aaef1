package geometry

import (
	"errors"
	"fmt"
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/paulmach/orb"
	"github.com/umahmood/haversine"
)

var (
	ErrLatitudeRange  = errors.New("geometry: latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("geometry: longitude out of range [-180, 180]")
)

// Point is a geographic coordinate. The embedded orb.Point stores [lon, lat].
type Point struct {
	orb.Point
}

func MakePoint(lat, lon float64) Point {
	return Point{orb.Point{lon, lat}}
}

func NewPoint(lat, lon float64) *Point {
	p := MakePoint(lat, lon)
	return &p
}

// Validate reports whether the coordinate lies on the globe.
func (p Point) Validate() error {
	lat, lon := p.Lat(), p.Lon()
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, lon)
	}
	return nil
}

// DistanceTo returns the great-circle distance in kilometers (haversine, R = 6371 km).
func (p Point) DistanceTo(q Point) float64 {
	_, km := haversine.Distance(p.coord(), q.coord())
	return km
}

// Geohash returns the 12 character geohash of the point.
func (p Point) Geohash() string {
	return geohash.Encode(p.Lat(), p.Lon())
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat(), p.Lon())
}

func (p Point) coord() haversine.Coord {
	return haversine.Coord{Lat: p.Lat(), Lon: p.Lon()}
}
