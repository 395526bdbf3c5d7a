// Package handle exposes the review pipeline, the notebook and the tag store
// over HTTP, mirroring the web client's API routes.
package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wrong-notebook/internal/review"
	"wrong-notebook/internal/store"
	"wrong-notebook/internal/tags"
)

type Handle struct {
	Sessions *review.Manager
	Tags     *tags.Store
	Entries  *store.EntryRepo

	// PingDB backs /healthz; nil skips the check.
	PingDB func(ctx context.Context) error
}

func New(sessions *review.Manager, tagStore *tags.Store, entries *store.EntryRepo) *Handle {
	return &Handle{Sessions: sessions, Tags: tagStore, Entries: entries}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Register wires all routes onto mux.
func (h *Handle) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/analyze", h.analyze)
	mux.HandleFunc("/api/error-items", h.errorItems)
	mux.HandleFunc("/api/review/cancel", h.cancelReview)
	mux.HandleFunc("/api/filters", h.filters)
	mux.HandleFunc("/api/stats", h.entryStats)
	mux.HandleFunc("/api/tags", h.tagsCRUD)
	mux.HandleFunc("/api/tags/export", h.tagsExport)
	mux.HandleFunc("/api/tags/import", h.tagsImport)
	mux.HandleFunc("/api/tags/clear", h.tagsClear)
	mux.HandleFunc("/api/tags/stats", h.tagsStats)
	mux.HandleFunc("/healthz", h.healthz)
}

func (h *Handle) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if h.PingDB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.PingDB(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
			return
		}
	}
	_, _ = w.Write([]byte("ok"))
}
