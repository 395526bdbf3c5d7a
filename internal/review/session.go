// Package review orchestrates the upload → analyze → review → save pipeline.
// A Session is an explicit state machine confined to one user interaction
// context; transports (HTTP, Telegram) drive it and render its typed errors.
package review

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/i18n"
)

// Step names the session states.
type Step string

const (
	StepUpload Step = "upload"
	StepReview Step = "review"
)

var (
	// ErrBusy rejects a second submit while an analysis is in flight.
	ErrBusy = errors.New("review: analysis already in progress")
	// ErrNotReviewing rejects save outside the review step.
	ErrNotReviewing = errors.New("review: no draft to save")
	// ErrBadImage wraps normalizer rejections; nothing was sent anywhere.
	ErrBadImage = errors.New("review: image rejected")
)

// Normalizer turns a raw upload into the embeddable image payload.
type Normalizer func(raw []byte) (string, error)

// EntryStore commits a confirmed draft plus its image to the notebook.
type EntryStore interface {
	SaveEntry(ctx context.Context, draft classify.QuestionDraft, originalImageURL string) error
}

// Session is one review pipeline instance. step == review implies image and
// draft are both present; leaving review clears both.
type Session struct {
	mu        sync.Mutex
	step      Step
	analyzing bool
	image     string
	draft     *classify.QuestionDraft
	locale    i18n.Locale

	normalize Normalizer
	engine    classify.Engine
	store     EntryStore
}

func NewSession(n Normalizer, e classify.Engine, st EntryStore) *Session {
	return &Session{
		step:      StepUpload,
		locale:    i18n.ZH,
		normalize: n,
		engine:    e,
		store:     st,
	}
}

func (s *Session) SetLocale(loc i18n.Locale) {
	s.mu.Lock()
	s.locale = loc
	s.mu.Unlock()
}

func (s *Session) Locale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Submit normalizes the upload, calls the classifier and, on success, moves
// the session to review with image and draft retained. Every failure leaves
// the session back in upload with no partial state. A submit while another
// one is analyzing returns ErrBusy, never queues.
func (s *Session) Submit(ctx context.Context, raw []byte) (classify.QuestionDraft, error) {
	s.mu.Lock()
	if s.analyzing {
		s.mu.Unlock()
		return classify.QuestionDraft{}, ErrBusy
	}
	s.analyzing = true
	loc := s.locale
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.analyzing = false
		s.mu.Unlock()
	}()

	payload, err := s.normalize(raw)
	if err != nil {
		// input error, caught before any network call; session untouched
		return classify.QuestionDraft{}, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	draft, err := s.engine.Analyze(ctx, payload, loc)
	if err != nil {
		s.mu.Lock()
		s.step = StepUpload
		s.image = ""
		s.draft = nil
		s.mu.Unlock()
		return classify.QuestionDraft{}, err
	}

	s.mu.Lock()
	s.step = StepReview
	s.image = payload
	s.draft = &draft
	s.mu.Unlock()
	return draft, nil
}

// Save commits the edited draft with the retained image. On store failure the
// session stays in review with the edited draft so no work is lost; on
// success everything resets to upload.
func (s *Session) Save(ctx context.Context, edited classify.QuestionDraft) error {
	s.mu.Lock()
	if s.step != StepReview {
		s.mu.Unlock()
		return ErrNotReviewing
	}
	s.draft = &edited
	image := s.image
	s.mu.Unlock()

	if err := s.store.SaveEntry(ctx, edited, image); err != nil {
		return err
	}

	s.reset()
	return nil
}

// Cancel discards draft and image unconditionally. No persistence occurs.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.step = StepUpload
	s.image = ""
	s.draft = nil
	s.mu.Unlock()
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Step  Step
	Image string
	Draft *classify.QuestionDraft
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{Step: s.step, Image: s.image}
	if s.draft != nil {
		d := *s.draft
		snap.Draft = &d
	}
	return snap
}

// MessageKeyFor maps a Submit failure to its user-facing message key.
func MessageKeyFor(err error) i18n.Key {
	switch {
	case errors.Is(err, ErrBusy):
		return i18n.KeyBusy
	case errors.Is(err, ErrBadImage):
		return i18n.KeyBadImage
	}
	switch classify.KindOf(err) {
	case classify.KindConnection:
		return i18n.KeyConnectionFailed
	case classify.KindInvalidResponse:
		return i18n.KeyInvalidResponse
	case classify.KindAuth:
		return i18n.KeyAuthFailed
	}
	return i18n.KeyAnalyzeFailed
}
