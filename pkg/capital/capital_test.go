package capital

import (
	"testing"

	"github.com/natevvv/capital-routing/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, c := range []struct {
		name     string
		lat, lon float64
	}{
		{"Paris", 48.8566, 2.3522},
		{"London", 51.5074, -0.1278},
		{"Berlin", 52.52, 13.405},
		{"Madrid", 40.4168, -3.7038},
	} {
		_, err := r.Register(c.name, c.lat, c.lon)
		require.NoError(t, err)
	}
	return r
}

func TestRegisterAndLookup(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, 4, r.Len())

	c, err := r.Lookup("paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", c.Name)
	assert.Equal(t, 48.8566, c.Lat())
	assert.Equal(t, 2.3522, c.Lon())
	assert.NotEmpty(t, c.Geohash)

	c, err = r.Lookup("  BERLIN\t")
	require.NoError(t, err)
	assert.Equal(t, "Berlin", c.Name)
}

func TestStoredNameKeepsWhitespace(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(" Paris", 48.8566, 2.3522)
	require.NoError(t, err)

	_, err = r.Lookup("Paris")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Lookup("  paris ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, r.Find("Paris"))

	_, err = r.Register("Paris", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{" Paris", "Paris"}, r.Names())
	c, err := r.Lookup(" PARIS\t")
	require.NoError(t, err)
	assert.Equal(t, "Paris", c.Name)
}

func TestLookupNotFound(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Lookup("Atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, r.Find("Atlantis"))

	var empty *Registry
	_, err = empty.Lookup("Paris")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReRegisterReplacesCoordinates(t *testing.T) {
	r := newTestRegistry(t)
	c, err := r.Register("PARIS", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "PARIS", c.Name)

	assert.Equal(t, 4, r.Len())
	got, err := r.Lookup("Paris")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Lat())
	assert.Equal(t, 2.0, got.Lon())
	// listing position is kept
	assert.Equal(t, []string{"PARIS", "London", "Berlin", "Madrid"}, r.Names())
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("  ", 0, 0)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = r.Register("Nowhere", 95, 0)
	assert.ErrorIs(t, err, geometry.ErrLatitudeRange)

	_, err = r.Register("Nowhere", 0, -181)
	assert.ErrorIs(t, err, geometry.ErrLongitudeRange)
	assert.Equal(t, 0, r.Len())
}

func TestCapitalsOrder(t *testing.T) {
	r := newTestRegistry(t)
	caps := r.Capitals()
	require.Len(t, caps, 4)
	assert.Equal(t, "Paris", caps[0].Name)
	assert.Equal(t, "Madrid", caps[3].String())
}

func TestBound(t *testing.T) {
	assert.True(t, NewRegistry().Bound().IsZero())

	b := newTestRegistry(t).Bound()
	assert.Equal(t, 40.4168, b.Bottom())
	assert.Equal(t, 52.52, b.Top())
	assert.Equal(t, -3.7038, b.Left())
	assert.Equal(t, 13.405, b.Right())
}

func TestNearest(t *testing.T) {
	r := newTestRegistry(t)
	c, ok := r.Nearest(geometry.MakePoint(49.0, 2.0))
	require.True(t, ok)
	assert.Equal(t, "Paris", c.Name)

	c, ok = r.Nearest(geometry.MakePoint(53, 14))
	require.True(t, ok)
	assert.Equal(t, "Berlin", c.Name)

	_, ok = NewRegistry().Nearest(geometry.MakePoint(0, 0))
	assert.False(t, ok)
}

func TestInCell(t *testing.T) {
	r := newTestRegistry(t)
	paris, err := r.Lookup("Paris")
	require.NoError(t, err)

	cell := r.InCell(paris.Geohash[:4])
	require.Len(t, cell, 1)
	assert.Equal(t, "Paris", cell[0].Name)

	assert.Len(t, r.InCell(""), 4)
	assert.Empty(t, r.InCell("zzzz"))
}
