// Package filter implements the cascading classification selection over the
// curriculum taxonomy plus the user's custom tags. Internally "unset" is the
// empty string; the UI sentinel "all" is accepted only at the Select/FromQuery
// boundary and normalized away immediately.
package filter

import (
	"net/url"

	"wrong-notebook/internal/curriculum"
)

// All is the UI-level sentinel meaning "no restriction".
const All = "all"

// Level identifies which selection level a transition targets.
type Level int

const (
	LevelGradeSemester Level = iota
	LevelChapter
	LevelTag
)

// Selection is the effective filter state. Empty string means unset.
// Invariant: Chapter is only set when GradeSemester is; Tag only when Chapter
// is.
type Selection struct {
	GradeSemester string `json:"gradeSemester,omitempty"`
	Chapter       string `json:"chapter,omitempty"`
	Tag           string `json:"tag,omitempty"`
}

func normalize(v string) string {
	if v == All {
		return ""
	}
	return v
}

// Select applies one transition and returns the next selection. Changing a
// level always clears the levels below it (cascade reset). Selecting a
// chapter with no grade set, or a tag with no chapter set, is a no-op.
func Select(sel Selection, level Level, value string) Selection {
	v := normalize(value)
	switch level {
	case LevelGradeSemester:
		return Selection{GradeSemester: v}
	case LevelChapter:
		if sel.GradeSemester == "" {
			return sel
		}
		return Selection{GradeSemester: sel.GradeSemester, Chapter: v}
	case LevelTag:
		if sel.Chapter == "" {
			return sel
		}
		return Selection{GradeSemester: sel.GradeSemester, Chapter: sel.Chapter, Tag: v}
	}
	return sel
}

// Options is the derived picker view for a selection.
type Options struct {
	Chapters []string `json:"chapters"`
	Tags     []string `json:"tags"`
}

// DeriveOptions computes the available chapters and tags. Chapters appear once
// a grade/semester is chosen; tags once a chapter is chosen. Tags are the
// chapter's built-in tags followed by the user's custom tags, concatenated
// without dedup; custom tags are not validated against the taxonomy.
func DeriveOptions(sel Selection, custom []string) Options {
	var opts Options
	if sel.GradeSemester == "" {
		return opts
	}
	for _, c := range curriculum.ChaptersOf(sel.GradeSemester) {
		opts.Chapters = append(opts.Chapters, c.Name)
	}
	if sel.Chapter == "" {
		return opts
	}
	if c, ok := curriculum.FindChapter(sel.GradeSemester, sel.Chapter); ok {
		opts.Tags = curriculum.TagsOf(c)
	}
	opts.Tags = append(opts.Tags, custom...)
	return opts
}

// FromQuery builds an effective selection from raw query parameters,
// accepting the "all" sentinel and enforcing the cascade invariant.
func FromQuery(q url.Values) Selection {
	sel := Select(Selection{}, LevelGradeSemester, q.Get("gradeSemester"))
	sel = Select(sel, LevelChapter, q.Get("chapter"))
	sel = Select(sel, LevelTag, q.Get("tag"))
	return sel
}
