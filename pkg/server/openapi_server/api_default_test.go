package openapi_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/natevvv/capital-routing/pkg/capital"
	"github.com/natevvv/capital-routing/pkg/graph"
	"github.com/natevvv/capital-routing/pkg/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := capital.NewRegistry()
	for _, c := range []struct {
		name     string
		lat, lon float64
	}{
		{"Paris", 48.8566, 2.3522},
		{"London", 51.5074, -0.1278},
		{"Berlin", 52.52, 13.405},
	} {
		_, err := reg.Register(c.name, c.lat, c.lon)
		require.NoError(t, err)
	}
	fn := graph.NewFlightNetwork()
	require.NoError(t, fn.AddFlight("Paris", "London", 20, 200))
	require.NoError(t, fn.AddFlight("London", "Berlin", 20, 200))
	require.NoError(t, fn.AddFlight("Paris", "Berlin", 50, 100))

	router, err := routing.NewRouter(fn.Freeze(), reg)
	require.NoError(t, err)
	service := NewDefaultApiService(router, zap.NewNop())
	return NewRouter(zap.NewNop(), NewDefaultApiController(service))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestComputeRouteEndpoint(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/routes", `{"source":"Paris","destination":"Berlin","metric":"Less Cost"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var result RouteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	_, err := uuid.Parse(result.Id)
	assert.NoError(t, err)
	assert.True(t, result.Reachable)
	assert.Equal(t, "cost", result.Metric)
	require.NotNil(t, result.Path)
	assert.Equal(t, []string{"Paris", "London", "Berlin"}, result.Path.Cities)
	assert.Equal(t, 40.0, result.Path.Cost)
	assert.Equal(t, int32(400), result.Path.Duration)
	assert.Len(t, result.Path.Waypoints, 3)

	// metric defaults to distance
	rec = do(t, h, http.MethodPost, "/routes", `{"source":"Paris","destination":"Berlin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "distance", result.Metric)
	assert.Equal(t, []string{"Paris", "Berlin"}, result.Path.Cities)

	rec = do(t, h, http.MethodPost, "/routes", `{"source":"Paris","destination":"Atlantis"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result = RouteResult{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Reachable)
	assert.Nil(t, result.Path)
}

func TestComputeRouteRejects(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"same endpoint", `{"source":"Paris","destination":" paris"}`, http.StatusBadRequest},
		{"unknown metric", `{"source":"Paris","destination":"Berlin","metric":"warp"}`, http.StatusBadRequest},
		{"unknown field", `{"source":"Paris","destination":"Berlin","via":"Rome"}`, http.StatusBadRequest},
		{"malformed json", `{"source":`, http.StatusBadRequest},
		{"missing destination", `{"source":"Paris"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/routes", tt.body)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRouteExports(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/routes/geojson", `{"source":"Paris","destination":"Berlin","metric":"time"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var fc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc["type"])
	assert.Len(t, fc["features"], 3)

	rec = do(t, h, http.MethodPost, "/routes/osm", `{"source":"Paris","destination":"Berlin","metric":"cost"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "<osm")
	assert.Contains(t, rec.Body.String(), "London")

	rec = do(t, h, http.MethodPost, "/routes/osm", `{"source":"Paris","destination":"Paris"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCapitalEndpoints(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/capitals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var capitals []Capital
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &capitals))
	require.Len(t, capitals, 3)
	assert.Equal(t, "Paris", capitals[0].Name)
	assert.Len(t, capitals[0].Geohash, 12)

	rec = do(t, h, http.MethodGet, "/capitals/london", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var c Capital
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "London", c.Name)
	assert.InDelta(t, 51.5074, c.Position.Lat, 1e-9)

	rec = do(t, h, http.MethodGet, "/capitals/Atlantis", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/capitals/nearest?lat=52.4&lon=13.1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Berlin", c.Name)

	rec = do(t, h, http.MethodGet, "/capitals/nearest?lat=north&lon=13.1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/capitals/nearest?lat=95&lon=13.1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/capitals/nearest?lat=52", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCitiesAndDistance(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/cities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cities Cities
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	assert.Equal(t, []string{"Paris", "London", "Berlin"}, cities.Cities)

	rec = do(t, h, http.MethodGet, "/distance?from=Paris&to=London", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var d DistanceResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.InDelta(t, 343.5, d.Km, 1)

	rec = do(t, h, http.MethodGet, "/distance?from=Paris&to=Atlantis", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/distance?from=Paris", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIsZeroValue(t *testing.T) {
	assert.True(t, IsZeroValue(""))
	assert.True(t, IsZeroValue(nil))
	assert.True(t, IsZeroValue([]string(nil)))
	assert.False(t, IsZeroValue("Paris"))
	assert.ErrorContains(t, AssertRouteRequestRequired(RouteRequest{Source: "Paris"}), "destination")
}
