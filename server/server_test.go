// Package server_test exercises the HTTP boundary end to end against an
// in-memory graph: status mapping, per-metric fan-out, and body shapes.
package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/server"
)

// newTestServer serves the canonical triangle plus an isolated node Z.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1, 5)
	_ = g.AddEdge("B", "C", 1, 5)
	_ = g.AddEdge("A", "C", 5, 1)
	_ = g.AddNode("Z")

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := mux.NewRouter()
	server.NewHandler(g, quiet).RegisterRoutes(router)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func postRoute(t *testing.T, ts *httptest.Server, body server.RouteRequest) (*http.Response, server.RouteResponse) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/route", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out server.RouteResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}

	return resp, out
}

func TestCalculateRoute_SingleMetric(t *testing.T) {
	ts := newTestServer(t)

	resp, out := postRoute(t, ts, server.RouteRequest{Start: "A", End: "C", Metric: "distance"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Results, 1)

	got := out.Results[0]
	assert.Equal(t, "distance", got.Metric)
	assert.Equal(t, []string{"A", "B", "C"}, got.Path)
	assert.Equal(t, 2.0, got.TotalDistance)
	assert.Equal(t, 10.0, got.TotalTime)
}

func TestCalculateRoute_BothMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, out := postRoute(t, ts, server.RouteRequest{Start: "A", End: "C", Metric: "both"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Results, 2)

	assert.Equal(t, "distance", out.Results[0].Metric)
	assert.Equal(t, []string{"A", "B", "C"}, out.Results[0].Path)
	assert.Equal(t, "time", out.Results[1].Metric)
	assert.Equal(t, []string{"A", "C"}, out.Results[1].Path)
}

func TestCalculateRoute_NoPathIs404(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := postRoute(t, ts, server.RouteRequest{Start: "A", End: "Z", Metric: "time"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCalculateRoute_UnknownNodeIs404(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := postRoute(t, ts, server.RouteRequest{Start: "A", End: "nope", Metric: "distance"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCalculateRoute_BadMetricIs400(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := postRoute(t, ts, server.RouteRequest{Start: "A", End: "C", Metric: "fastest"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculateRoute_BadBodyIs400(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/route", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
