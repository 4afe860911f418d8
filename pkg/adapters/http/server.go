// Package http exposes a small debug/status surface over the live-call
// tracker: JSON snapshots of in-flight instrumented calls plus the
// prometheus scrape endpoint. It serves only what is currently running;
// there is no history and no write surface.
package http

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/aretw0/breakpoint/pkg/observers"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler builds the status handler. gatherer may be nil to skip
// /metrics.
func NewHandler(tracker *observers.Tracker, gatherer prometheus.Gatherer) http.Handler {
	s := &server{tracker: tracker}

	r := chi.NewRouter()
	r.Get("/calls", s.listCalls)
	r.Get("/calls/{id}", s.getCall)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

type server struct {
	tracker *observers.Tracker
}

func (s *server) listCalls(w http.ResponseWriter, r *http.Request) {
	snaps := s.tracker.Snapshots()
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID < snaps[j].ID })
	writeJSON(w, map[string]any{"calls": snaps})
}

func (s *server) getCall(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := s.tracker.Snapshot(id)
	if !ok {
		http.Error(w, "call not found", http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
