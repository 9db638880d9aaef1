package routing

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

const generator = "capital-routing"

// RouteGeoJSON renders a route as one Point feature per located city followed by a
// LineString feature carrying the route totals. Unreachable routes produce an empty collection.
func RouteGeoJSON(route Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !route.Exists {
		return fc
	}

	line := make(orb.LineString, 0, len(route.Waypoints))
	for i, wp := range route.Waypoints {
		f := geojson.NewFeature(wp.Point.Point)
		f.Properties["name"] = wp.City
		f.Properties["stop"] = i
		f.Properties["geohash"] = wp.Geohash()
		fc.Append(f)
		line = append(line, wp.Point.Point)
	}

	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties["source"] = route.Source
		f.Properties["destination"] = route.Destination
		f.Properties["metric"] = route.Metric.String()
		f.Properties["cities"] = route.Cities
		f.Properties["cost"] = route.Cost
		f.Properties["duration"] = route.Duration
		f.Properties["distance"] = route.Distance
		fc.Append(f)
	}
	return fc
}

// RouteOSM renders a route as an OSM document with one node per located city and a
// way through them. New objects get negative ids as in OSM editors.
func RouteOSM(route Route) *osm.OSM {
	o := &osm.OSM{Generator: generator}
	if !route.Exists {
		return o
	}

	way := &osm.Way{
		ID:      -1,
		Visible: true,
		Nodes:   make(osm.WayNodes, 0, len(route.Waypoints)),
		Tags: osm.Tags{
			{Key: "type", Value: "route"},
			{Key: "route", Value: "flight"},
			{Key: "name", Value: fmt.Sprintf("%s - %s", route.Source, route.Destination)},
			{Key: "metric", Value: route.Metric.String()},
			{Key: "cost", Value: strconv.FormatFloat(route.Cost, 'f', -1, 64)},
			{Key: "duration", Value: strconv.Itoa(route.Duration)},
			{Key: "distance", Value: strconv.FormatFloat(route.Distance, 'f', 1, 64)},
		},
	}
	for i, wp := range route.Waypoints {
		id := osm.NodeID(-(i + 1))
		o.Nodes = append(o.Nodes, &osm.Node{
			ID:      id,
			Lat:     wp.Lat(),
			Lon:     wp.Lon(),
			Visible: true,
			Tags: osm.Tags{
				{Key: "name", Value: wp.City},
				{Key: "capital", Value: "yes"},
			},
		})
		way.Nodes = append(way.Nodes, osm.WayNode{ID: id, Lat: wp.Lat(), Lon: wp.Lon()})
	}
	if len(way.Nodes) >= 2 {
		o.Ways = append(o.Ways, way)
	}
	return o
}
