package handle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/kv"
	"wrong-notebook/internal/review"
	"wrong-notebook/internal/tags"
)

type stubEngine struct {
	draft classify.QuestionDraft
	err   error
}

func (s *stubEngine) Name() string { return "stub" }
func (s *stubEngine) Analyze(ctx context.Context, payload string, loc i18n.Locale) (classify.QuestionDraft, error) {
	if s.err != nil {
		return classify.QuestionDraft{}, s.err
	}
	return s.draft, nil
}

type stubEntryStore struct {
	err   error
	saved int
}

func (s *stubEntryStore) SaveEntry(ctx context.Context, d classify.QuestionDraft, img string) error {
	if s.err != nil {
		return s.err
	}
	s.saved++
	return nil
}

func passNormalizer(raw []byte) (string, error) {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func newTestHandle(eng classify.Engine, st review.EntryStore) (*Handle, *http.ServeMux) {
	h := New(
		review.NewManager(passNormalizer, eng, st),
		tags.NewStore(kv.NewMemory()),
		nil,
	)
	mux := http.NewServeMux()
	h.Register(mux)
	return h, mux
}

func analyzeBody(t *testing.T, lang string) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(map[string]string{
		"imageBase64": base64.StdEncoding.EncodeToString([]byte("fake image bytes")),
		"language":    lang,
	})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestAnalyzeSuccess(t *testing.T) {
	draft := classify.QuestionDraft{Question: "1+1=?", Subject: "math"}
	_, mux := newTestHandle(&stubEngine{draft: draft}, &stubEntryStore{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, "en")))

	require.Equal(t, http.StatusOK, rec.Code)
	var got classify.QuestionDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, draft, got)
}

func TestAnalyzeFailureCarriesMarkerAndLocalizedMessage(t *testing.T) {
	cases := []struct {
		kind    classify.Kind
		marker  string
		zhMsgIn string
	}{
		{classify.KindConnection, "AI_CONNECTION_FAILED", "无法连接"},
		{classify.KindInvalidResponse, "AI_RESPONSE_ERROR", "无效的响应"},
		{classify.KindAuth, "AI_AUTH_ERROR", "密钥无效"},
		{classify.KindOther, "AI_ANALYSIS_FAILED", "分析失败"},
	}
	for _, tc := range cases {
		eng := &stubEngine{err: &classify.Error{Kind: tc.kind, Err: errors.New("x")}}
		_, mux := newTestHandle(eng, &stubEntryStore{})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, "zh")))

		require.Equal(t, http.StatusInternalServerError, rec.Code, tc.marker)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tc.marker, resp["error"])
		assert.Contains(t, resp["message"], tc.zhMsgIn)
	}
}

func TestAnalyzeRejectsUndecodableImage(t *testing.T) {
	_, mux := newTestHandle(&stubEngine{}, &stubEntryStore{})

	body, _ := json.Marshal(map[string]string{"imageBase64": "!!! not base64 !!!"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_IMAGE")
}

func TestSaveFlow(t *testing.T) {
	draft := classify.QuestionDraft{Question: "q", Subject: "math"}
	st := &stubEntryStore{}
	_, mux := newTestHandle(&stubEngine{draft: draft}, st)

	// save before any analyze: nothing to commit
	body, _ := json.Marshal(draft)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/error-items", bytes.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, "en")))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ = json.Marshal(draft)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/error-items", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, st.saved)
	assert.Contains(t, rec.Body.String(), "Saved successfully!")
}

func TestSaveFailureKeepsSessionReviewable(t *testing.T) {
	draft := classify.QuestionDraft{Question: "q"}
	st := &stubEntryStore{err: errors.New("db down")}
	h, mux := newTestHandle(&stubEngine{draft: draft}, st)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, "zh")))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := json.Marshal(draft)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/error-items", bytes.NewReader(body)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SAVE_FAILED")

	// the session still holds the draft
	sess := h.Sessions.Session("default")
	assert.Equal(t, review.StepReview, sess.Snapshot().Step)
}

func TestCancelEndpoint(t *testing.T) {
	draft := classify.QuestionDraft{Question: "q"}
	h, mux := newTestHandle(&stubEngine{draft: draft}, &stubEntryStore{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", analyzeBody(t, "zh")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/review/cancel", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, review.StepUpload, h.Sessions.Session("default").Snapshot().Step)
}

func TestTagsEndpoints(t *testing.T) {
	_, mux := newTestHandle(&stubEngine{}, &stubEntryStore{})

	post := func(path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		return rec
	}

	rec := post("/api/tags", `{"subject":"math","name":"韦达定理"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)

	// duplicate rejected
	rec = post("/api/tags", `{"subject":"math","name":"韦达定理"}`)
	assert.Contains(t, rec.Body.String(), `"ok":false`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tags/stats", nil))
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tags/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()
	assert.Contains(t, exported, "韦达定理")

	// malformed import rejected
	rec = post("/api/tags/import", "{{nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// round-trip import accepted
	rec = post("/api/tags/import", exported)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tags?subject=math&name=韦达定理", nil))
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestFiltersEndpoint(t *testing.T) {
	_, mux := newTestHandle(&stubEngine{}, &stubEntryStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/filters?gradeSemester=七年级上&chapter=all", nil)
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		GradeSemesters []string `json:"gradeSemesters"`
		Selection      struct {
			GradeSemester string `json:"gradeSemester"`
			Chapter       string `json:"chapter"`
		} `json:"selection"`
		Options struct {
			Chapters []string `json:"chapters"`
			Tags     []string `json:"tags"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.GradeSemesters)
	assert.Equal(t, "七年级上", resp.Selection.GradeSemester)
	assert.Empty(t, resp.Selection.Chapter)
	assert.NotEmpty(t, resp.Options.Chapters)
	assert.Empty(t, resp.Options.Tags)
}
