package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/i18n"
)

type fakeEngine struct {
	mu      sync.Mutex
	draft   classify.QuestionDraft
	err     error
	started chan struct{} // closed when Analyze begins, if set
	release chan struct{} // Analyze blocks until closed, if set
	calls   int
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Analyze(ctx context.Context, payload string, loc i18n.Locale) (classify.QuestionDraft, error) {
	f.mu.Lock()
	f.calls++
	started, release := f.started, f.release
	draft, err := f.draft, f.err
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return classify.QuestionDraft{}, err
	}
	return draft, nil
}

type fakeStore struct {
	err    error
	saved  []classify.QuestionDraft
	images []string
}

func (f *fakeStore) SaveEntry(ctx context.Context, d classify.QuestionDraft, img string) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, d)
	f.images = append(f.images, img)
	return nil
}

func okNormalizer(raw []byte) (string, error) {
	return "data:image/jpeg;base64,AAAA", nil
}

var testDraft = classify.QuestionDraft{
	Question:      "解方程 2x+1=5",
	Answer:        "x=2",
	Subject:       "math",
	KnowledgeTags: []string{"一元一次方程"},
}

func TestSubmitSuccessEntersReview(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	s := NewSession(okNormalizer, eng, &fakeStore{})

	got, err := s.Submit(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, testDraft, got)

	snap := s.Snapshot()
	assert.Equal(t, StepReview, snap.Step)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", snap.Image)
	require.NotNil(t, snap.Draft)
	assert.Equal(t, testDraft, *snap.Draft)
}

func TestSubmitClassifierFailureReturnsToUpload(t *testing.T) {
	kinds := map[classify.Kind]i18n.Key{
		classify.KindConnection:      i18n.KeyConnectionFailed,
		classify.KindInvalidResponse: i18n.KeyInvalidResponse,
		classify.KindAuth:            i18n.KeyAuthFailed,
	}
	for kind, wantKey := range kinds {
		eng := &fakeEngine{err: &classify.Error{Kind: kind, Err: errors.New("boom")}}
		s := NewSession(okNormalizer, eng, &fakeStore{})

		_, err := s.Submit(context.Background(), []byte("img"))
		require.Error(t, err)
		assert.Equal(t, wantKey, MessageKeyFor(err))

		snap := s.Snapshot()
		assert.Equal(t, StepUpload, snap.Step)
		assert.Empty(t, snap.Image)
		assert.Nil(t, snap.Draft)
	}
}

func TestSubmitUntypedFailureFallsBackToGenericMessage(t *testing.T) {
	eng := &fakeEngine{err: errors.New("weird shape")}
	s := NewSession(okNormalizer, eng, &fakeStore{})

	_, err := s.Submit(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Equal(t, i18n.KeyAnalyzeFailed, MessageKeyFor(err))
	assert.Equal(t, StepUpload, s.Snapshot().Step)
}

func TestSubmitBadImageAbortsBeforeClassifier(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	s := NewSession(func([]byte) (string, error) {
		return "", errors.New("unsupported format")
	}, eng, &fakeStore{})

	_, err := s.Submit(context.Background(), []byte("img"))
	require.ErrorIs(t, err, ErrBadImage)
	assert.Equal(t, i18n.KeyBadImage, MessageKeyFor(err))
	assert.Equal(t, 0, eng.calls)
	assert.Equal(t, StepUpload, s.Snapshot().Step)
}

func TestSecondSubmitWhileAnalyzingIsRejected(t *testing.T) {
	eng := &fakeEngine{
		draft:   testDraft,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewSession(okNormalizer, eng, &fakeStore{})

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), []byte("img"))
		done <- err
	}()
	<-eng.started

	_, err := s.Submit(context.Background(), []byte("again"))
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, i18n.KeyBusy, MessageKeyFor(err))

	close(eng.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, eng.calls)
}

func TestSaveSuccessResetsToUpload(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	st := &fakeStore{}
	s := NewSession(okNormalizer, eng, st)

	_, err := s.Submit(context.Background(), []byte("img"))
	require.NoError(t, err)

	edited := testDraft
	edited.Answer = "x = 2（移项后除以 2）"
	require.NoError(t, s.Save(context.Background(), edited))

	require.Len(t, st.saved, 1)
	assert.Equal(t, edited, st.saved[0])
	assert.Equal(t, "data:image/jpeg;base64,AAAA", st.images[0])

	snap := s.Snapshot()
	assert.Equal(t, StepUpload, snap.Step)
	assert.Empty(t, snap.Image)
	assert.Nil(t, snap.Draft)
}

func TestSaveFailureKeepsReviewAndEditedDraft(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	st := &fakeStore{err: errors.New("store unreachable")}
	s := NewSession(okNormalizer, eng, st)

	_, err := s.Submit(context.Background(), []byte("img"))
	require.NoError(t, err)

	edited := testDraft
	edited.Explanation = "先移项再合并"
	require.Error(t, s.Save(context.Background(), edited))

	snap := s.Snapshot()
	assert.Equal(t, StepReview, snap.Step)
	assert.NotEmpty(t, snap.Image)
	require.NotNil(t, snap.Draft)
	assert.Equal(t, edited, *snap.Draft)
}

func TestSaveOutsideReviewRejected(t *testing.T) {
	s := NewSession(okNormalizer, &fakeEngine{}, &fakeStore{})
	assert.ErrorIs(t, s.Save(context.Background(), testDraft), ErrNotReviewing)
}

func TestCancelAlwaysResets(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	s := NewSession(okNormalizer, eng, &fakeStore{})

	_, err := s.Submit(context.Background(), []byte("img"))
	require.NoError(t, err)

	s.Cancel()
	snap := s.Snapshot()
	assert.Equal(t, StepUpload, snap.Step)
	assert.Empty(t, snap.Image)
	assert.Nil(t, snap.Draft)

	// cancelling from upload is a harmless no-op
	s.Cancel()
	assert.Equal(t, StepUpload, s.Snapshot().Step)
}

func TestManagerKeepsSessionsIndependent(t *testing.T) {
	eng := &fakeEngine{draft: testDraft}
	m := NewManager(okNormalizer, eng, &fakeStore{})

	a := m.Session("a")
	b := m.Session("b")
	require.NotSame(t, a, b)
	assert.Same(t, a, m.Session("a"))

	_, err := a.Submit(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, StepReview, a.Snapshot().Step)
	assert.Equal(t, StepUpload, b.Snapshot().Step)
}
