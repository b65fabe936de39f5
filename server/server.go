package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/dijkstra"
)

// RouteRequest is the JSON body of POST /api/route.
type RouteRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Metric string `json:"metric"`
}

// RouteResult is one per-metric entry of the response.
type RouteResult struct {
	Metric        string   `json:"metric"`
	Path          []string `json:"path"`
	TotalDistance float64  `json:"total_distance"`
	TotalTime     float64  `json:"total_time"`
}

// RouteResponse is the body of a successful POST /api/route.
type RouteResponse struct {
	Results []RouteResult `json:"results"`
}

// Handler serves shortest-path queries over a loaded graph.
type Handler struct {
	graph *core.Graph
	log   *slog.Logger
}

// NewHandler builds a Handler over g. A nil logger falls back to
// slog.Default.
func NewHandler(g *core.Graph, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}

	return &Handler{graph: g, log: log}
}

// RegisterRoutes attaches the handler's endpoints to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/route", h.CalculateRoute).Methods(http.MethodPost)
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
}

// CalculateRoute decodes the request, fans out one engine call per selected
// metric, and renders the per-metric results.
func (h *Handler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	// Reject an unrecognized selector before the engine is involved.
	metric, err := dijkstra.ParseMetric(req.Metric)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	results := make([]RouteResult, 0, 2)
	for _, m := range metric.Split() {
		res, err := dijkstra.ShortestPath(h.graph, req.Start, req.End, dijkstra.WithMetric(m))
		if err != nil {
			h.renderQueryError(w, req, err)

			return
		}
		results = append(results, RouteResult{
			Metric:        res.Metric.String(),
			Path:          res.Path,
			TotalDistance: res.TotalDistance,
			TotalTime:     res.TotalTime,
		})
	}

	h.log.Info("route computed",
		"start", req.Start, "end", req.End, "metric", req.Metric,
		"hops", len(results[0].Path)-1)
	writeJSON(w, http.StatusOK, RouteResponse{Results: results})
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// renderQueryError maps engine errors onto HTTP statuses: expected
// not-found outcomes become 404, caller mistakes 400, anything else 500.
func (h *Handler) renderQueryError(w http.ResponseWriter, req RouteRequest, err error) {
	switch {
	case errors.Is(err, dijkstra.ErrNoPath), errors.Is(err, dijkstra.ErrNodeNotFound):
		h.log.Info("route not found",
			"start", req.Start, "end", req.End, "reason", err.Error())
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, dijkstra.ErrEmptyEndpoint), errors.Is(err, dijkstra.ErrBadMetric):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("route query failed",
			"start", req.Start, "end", req.End, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
