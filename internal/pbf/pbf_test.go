package pbf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/geometry"
	"github.com/natevvv/capital-routing/pkg/ingest"
	"github.com/qedus/osmpbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportNode(t *testing.T) {
	reg := capital.NewRegistry()
	_, err := reg.Register("Paris", 48.8566, 2.3522)
	require.NoError(t, err)

	ci := NewCapitalImporter(nil)
	for _, node := range []*osmpbf.Node{
		{ID: 1, Lat: 52.517, Lon: 13.3889, Tags: map[string]string{"capital": "yes", "name": "Berlin", "place": "city"}},
		{ID: 2, Lat: 55.6761, Lon: 12.5683, Tags: map[string]string{"capital": "2", "name": "København", "name:en": "Copenhagen"}},
		{ID: 3, Lat: 48.1351, Lon: 11.582, Tags: map[string]string{"capital": "4", "name": "München"}},
		{ID: 4, Lat: 50.0, Lon: 10.0, Tags: map[string]string{"place": "town", "name": "Nowhere"}},
		{ID: 5, Lat: 48.85, Lon: 2.35, Tags: map[string]string{"capital": "yes", "name": "Paris"}},
		{ID: 6, Lat: 1, Lon: 1, Tags: map[string]string{"capital": "yes"}},
		{ID: 7, Lat: 95, Lon: 1, Tags: map[string]string{"capital": "yes", "name": "Broken"}},
	} {
		ci.importNode(reg, node)
	}

	assert.Equal(t, 2, ci.Imported())
	assert.Equal(t, []string{"Paris", "Berlin", "Copenhagen"}, reg.Names())

	rejected := ci.Rejected()
	require.Len(t, rejected, 3)
	assert.ErrorIs(t, rejected[0], ErrDuplicateCapital)
	assert.Equal(t, int64(5), rejected[0].ID)
	assert.ErrorIs(t, rejected[1], ErrNoName)
	assert.ErrorIs(t, rejected[2], geometry.ErrLatitudeRange)

	// the registry entry from the text source wins
	paris, err := reg.Lookup("Paris")
	require.NoError(t, err)
	assert.Equal(t, 48.8566, paris.Lat())
}

func TestImportEmptyStream(t *testing.T) {
	err := NewCapitalImporter(strings.NewReader("")).Import(capital.NewRegistry())
	assert.Error(t, err)
}

func TestExportCapitals(t *testing.T) {
	reg := capital.NewRegistry()
	_, err := reg.Register("Paris", 48.8566, 2.3522)
	require.NoError(t, err)
	_, err = reg.Register("Brasília", -15.7939, -47.8828)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportCapitals(reg, &buf))
	assert.Equal(t, "Paris,48.8566,2.3522\nBrasília,-15.7939,-47.8828\n", buf.String())

	reloaded, errs := ingest.LoadCapitals(&buf)
	assert.Empty(t, errs)
	assert.Equal(t, reg.Capitals(), reloaded.Capitals())
}
