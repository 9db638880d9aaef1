package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		Capitals: writeFile(t, dir, "capitals.txt", "Paris,48.8566,2.3522\nLondon,51.5074,-0.1278\nAtlantis,north,0\n"),
		Flights:  writeFile(t, dir, "flights.txt", "Paris,London,$20,70min\nLondon,Avalon,$30,90min\nParis,Rome\n"),
	}

	ds, err := Load(files)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Registry.Len())
	assert.Len(t, ds.CapitalErrors, 1)
	assert.Equal(t, 2, ds.Network.FlightCount())
	assert.Len(t, ds.FlightErrors, 1)
	assert.Equal(t, []string{"Avalon"}, ds.UnlocatedCities())

	core, logs := observer.New(zap.DebugLevel)
	ds.Report(zap.New(core))
	assert.Equal(t, 1, logs.FilterMessage("rejected capital").Len())
	assert.Equal(t, 1, logs.FilterMessage("rejected flight").Len())
	require.Equal(t, 1, logs.FilterMessage("dataset loaded").Len())
	fields := logs.FilterMessage("dataset loaded").All()[0].ContextMap()
	assert.Equal(t, int64(2), fields["flights"])
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(Files{
		Capitals: filepath.Join(dir, "missing.txt"),
		Flights:  writeFile(t, dir, "flights.txt", ""),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(Files{
		Capitals: writeFile(t, dir, "capitals.txt", ""),
		Flights:  filepath.Join(dir, "missing.txt"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMaxCities(t *testing.T) {
	dir := t.TempDir()
	ds, err := Load(Files{
		Capitals:  writeFile(t, dir, "capitals.txt", ""),
		Flights:   writeFile(t, dir, "flights.txt", "A,B,1,1\nC,D,1,1\n"),
		MaxCities: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Network.NodeCount())
	assert.Len(t, ds.FlightErrors, 1)
}
