// Package classify is the external-classifier boundary: a submitted image
// payload plus a locale go in, a structured question draft or a typed failure
// comes out.
package classify

import (
	"context"

	"wrong-notebook/internal/i18n"
)

// QuestionDraft is the classifier's proposed transcription/classification of
// a submitted question. The pipeline passes it through and lets the user edit
// every field before it is committed.
type QuestionDraft struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject"`
	GradeSemester string   `json:"gradeSemester,omitempty"`
	Chapter       string   `json:"chapter,omitempty"`
	KnowledgeTags []string `json:"knowledgeTags"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	Language      string   `json:"language,omitempty"`
}

// Engine analyzes one normalized image payload.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, imagePayload string, loc i18n.Locale) (QuestionDraft, error)
}
