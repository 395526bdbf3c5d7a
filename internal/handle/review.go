package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/curriculum"
	"wrong-notebook/internal/filter"
	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/photo"
	"wrong-notebook/internal/review"
	"wrong-notebook/internal/store"
)

// sessionID scopes one review session per client; the web app sends a stable
// header per tab.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}

func locale(r *http.Request, bodyLang string) i18n.Locale {
	if bodyLang != "" {
		return i18n.Parse(bodyLang)
	}
	return i18n.Parse(r.Header.Get("X-Language"))
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
	Language    string `json:"language"`
}

func (h *Handle) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	loc := locale(r, req.Language)
	sess := h.Sessions.Session(sessionID(r))
	sess.SetLocale(loc)

	raw, _, err := photo.Decode(req.ImageBase64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "BAD_IMAGE",
			"message": i18n.T(loc, i18n.KeyBadImage),
		})
		return
	}

	draft, err := sess.Submit(r.Context(), raw)
	if err != nil {
		code := http.StatusInternalServerError
		marker := classify.KindOf(err).Marker()
		switch {
		case errors.Is(err, review.ErrBusy):
			code, marker = http.StatusConflict, "BUSY"
		case errors.Is(err, review.ErrBadImage):
			code, marker = http.StatusBadRequest, "BAD_IMAGE"
		}
		writeJSON(w, code, map[string]string{
			"error":   marker,
			"message": i18n.T(loc, review.MessageKeyFor(err)),
		})
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handle) errorItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.saveEntry(w, r)
	case http.MethodGet:
		h.listEntries(w, r)
	case http.MethodDelete:
		h.deleteEntry(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handle) saveEntry(w http.ResponseWriter, r *http.Request) {
	var draft classify.QuestionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	sess := h.Sessions.Session(sessionID(r))
	loc := sess.Locale()

	if err := sess.Save(r.Context(), draft); err != nil {
		if errors.Is(err, review.ErrNotReviewing) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "NOT_REVIEWING"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "SAVE_FAILED",
			"message": i18n.T(loc, i18n.KeySaveFailed),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": i18n.T(loc, i18n.KeySaveSuccess),
	})
}

func (h *Handle) listEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := filter.FromQuery(q)
	limit, _ := strconv.Atoi(q.Get("limit"))
	entries, err := h.Entries.List(r.Context(), sel, q.Get("subject"), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handle) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	if err := h.Entries.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		}
		writeJSON(w, code, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handle) cancelReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := h.Sessions.Session(sessionID(r))
	sess.Cancel()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": i18n.T(sess.Locale(), i18n.KeyCancelled),
	})
}

func (h *Handle) filters(w http.ResponseWriter, r *http.Request) {
	sel := filter.FromQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, map[string]any{
		"gradeSemesters": curriculum.GradeSemesters(),
		"selection":      sel,
		"options":        filter.DeriveOptions(sel, h.Tags.ListFlat()),
	})
}

func (h *Handle) entryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Entries.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
