package path

import (
	"encoding/json"
	"testing"

	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]Metric{
		"distance":          Distance,
		"Cost":              Cost,
		" TIME ":            Time,
		"Shortest Distance": Distance,
		"less cost":         Cost,
		"Less Time":         Time,
	} {
		got, err := ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMetric("fastest")
	assert.ErrorIs(t, err, ErrUnknownMetric)
	assert.Equal(t, "Metric(7)", Metric(7).String())
	assert.False(t, Metric(-1).Valid())
}

func TestMetricJSON(t *testing.T) {
	var req struct {
		Metric Metric `json:"metric"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"metric":"Less Time"}`), &req))
	assert.Equal(t, Time, req.Metric)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"metric":"time"}`, string(out))

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"metric":"warp"}`), &req), ErrUnknownMetric)
}

func TestWeightFunctions(t *testing.T) {
	reg := capital.NewRegistry()
	paris, err := reg.Register("Paris", 48.8566, 2.3522)
	require.NoError(t, err)
	london, err := reg.Register("London", 51.5074, -0.1278)
	require.NoError(t, err)
	arc := graph.MakeArc(1, 120.5, 75)

	assert.Equal(t, 120.5, Cost.Weight()(arc, nil, nil))
	assert.Equal(t, 75.0, Time.Weight()(arc, nil, nil))
	assert.InDelta(t, 343.5, Distance.Weight()(arc, &paris, &london), 1)

	assert.True(t, Distance.NeedsCoordinates())
	assert.False(t, Cost.NeedsCoordinates())
	assert.False(t, Time.NeedsCoordinates())
}
