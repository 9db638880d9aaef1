package capital

import "fmt"

// GreatCircleDistance returns the haversine distance between two capitals in kilometers.
func GreatCircleDistance(a, b Capital) float64 {
	return a.Location.DistanceTo(b.Location)
}

// DistanceBetween resolves both names in the registry and returns their distance in kilometers.
func DistanceBetween(r *Registry, nameA, nameB string) (float64, error) {
	a, err := r.Lookup(nameA)
	if err != nil {
		return 0, err
	}
	b, err := r.Lookup(nameB)
	if err != nil {
		return 0, err
	}
	return GreatCircleDistance(a, b), nil
}

// PathDistance sums the distances between consecutive cities of a path.
// Paths with fewer than two cities have length 0.
func PathDistance(r *Registry, names []string) (float64, error) {
	total := 0.0
	for i := 0; i < len(names)-1; i++ {
		d, err := DistanceBetween(r, names[i], names[i+1])
		if err != nil {
			return 0, fmt.Errorf("leg %d: %w", i, err)
		}
		total += d
	}
	return total, nil
}
