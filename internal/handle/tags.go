package handle

import (
	"encoding/json"
	"io"
	"net/http"

	"wrong-notebook/internal/tags"
)

type tagRequest struct {
	Subject  string `json:"subject"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handle) tagsCRUD(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.Tags.Load())
	case http.MethodPost:
		var req tagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
			return
		}
		ok := h.Tags.Add(tags.Subject(req.Subject), req.Name, req.Category)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
	case http.MethodDelete:
		q := r.URL.Query()
		ok := h.Tags.Remove(tags.Subject(q.Get("subject")), q.Get("name"))
		writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handle) tagsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="custom-tags.json"`)
	_, _ = w.Write([]byte(h.Tags.Export()))
}

func (h *Handle) tagsImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	if !h.Tags.Import(string(body)) {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handle) tagsClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.Tags.Clear()
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handle) tagsStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.Tags.Stats())
}
