package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointAccessors(t *testing.T) {
	p := MakePoint(48.8566, 2.3522)
	assert.Equal(t, 48.8566, p.Lat())
	assert.Equal(t, 2.3522, p.Lon())

	np := NewPoint(-33.9, 18.4)
	require.NotNil(t, np)
	assert.Equal(t, -33.9, np.Lat())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		err  error
	}{
		{"origin", MakePoint(0, 0), nil},
		{"corners", MakePoint(-90, 180), nil},
		{"north pole", MakePoint(90, -180), nil},
		{"lat too big", MakePoint(90.01, 0), ErrLatitudeRange},
		{"lat too small", MakePoint(-91, 0), ErrLatitudeRange},
		{"lon too big", MakePoint(0, 180.5), ErrLongitudeRange},
		{"lat nan", MakePoint(math.NaN(), 0), ErrLatitudeRange},
		{"lon inf", MakePoint(0, math.Inf(1)), ErrLongitudeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestDistanceTo(t *testing.T) {
	paris := MakePoint(48.8566, 2.3522)
	london := MakePoint(51.5074, -0.1278)

	d := paris.DistanceTo(london)
	assert.InDelta(t, 343.5, d, 1.0)
	assert.Equal(t, d, london.DistanceTo(paris))
	assert.Equal(t, 0.0, paris.DistanceTo(paris))
}

func TestDistanceQuarterMeridian(t *testing.T) {
	// equator to pole is a quarter of the circumference: R * pi / 2
	d := MakePoint(0, 0).DistanceTo(MakePoint(90, 0))
	assert.InDelta(t, 6371*math.Pi/2, d, 1e-6)
}

func TestGeohash(t *testing.T) {
	p := MakePoint(57.64911, 10.40744)
	h := p.Geohash()
	assert.Len(t, h, 12)
	assert.Equal(t, "u4pruydqqvj", h[:11])
}
