// Package store persists saved notebook entries in Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/filter"
)

var ErrNotFound = sql.ErrNoRows

// Entry is one saved mistake-notebook record.
type Entry struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	Question         string    `json:"question"`
	Answer           string    `json:"answer"`
	Explanation      string    `json:"explanation"`
	Subject          string    `json:"subject"`
	GradeSemester    string    `json:"gradeSemester,omitempty"`
	Chapter          string    `json:"chapter,omitempty"`
	KnowledgeTags    []string  `json:"knowledgeTags"`
	Difficulty       string    `json:"difficulty,omitempty"`
	OriginalImageURL string    `json:"originalImageUrl"`
}

type EntryRepo struct{ DB *sql.DB }

func NewEntryRepo(db *sql.DB) *EntryRepo { return &EntryRepo{DB: db} }

const schema = `
create table if not exists error_items (
  id                 text primary key,
  created_at         timestamptz not null default now(),
  question           text not null,
  answer             text not null default '',
  explanation        text not null default '',
  subject            text not null default 'other',
  grade_semester     text not null default '',
  chapter            text not null default '',
  knowledge_tags     jsonb not null default '[]',
  difficulty         text not null default '',
  original_image_url text not null default ''
);
create index if not exists error_items_subject_idx on error_items (subject);
create index if not exists error_items_created_idx on error_items (created_at desc);`

// EnsureSchema creates the table on first run.
func (r *EntryRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

// Create inserts one entry, assigning an id when blank.
func (r *EntryRepo) Create(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	tagsJSON, _ := json.Marshal(e.KnowledgeTags)
	const q = `
insert into error_items (
  id, question, answer, explanation, subject,
  grade_semester, chapter, knowledge_tags, difficulty, original_image_url
) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := r.DB.ExecContext(ctx, q,
		e.ID, e.Question, e.Answer, e.Explanation, e.Subject,
		e.GradeSemester, e.Chapter, tagsJSON, e.Difficulty, e.OriginalImageURL,
	)
	return err
}

// SaveEntry adapts a confirmed draft to the review pipeline's store port.
func (r *EntryRepo) SaveEntry(ctx context.Context, d classify.QuestionDraft, originalImageURL string) error {
	return r.Create(ctx, Entry{
		Question:         d.Question,
		Answer:           d.Answer,
		Explanation:      d.Explanation,
		Subject:          d.Subject,
		GradeSemester:    d.GradeSemester,
		Chapter:          d.Chapter,
		KnowledgeTags:    d.KnowledgeTags,
		Difficulty:       d.Difficulty,
		OriginalImageURL: originalImageURL,
	})
}

// List returns entries matching the effective selection plus an optional
// subject, newest first. An unset level does not constrain.
func (r *EntryRepo) List(ctx context.Context, sel filter.Selection, subject string, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var b strings.Builder
	b.WriteString(`
select id, created_at, question, answer, explanation, subject,
       grade_semester, chapter, knowledge_tags, difficulty, original_image_url
from error_items`)

	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if subject != "" && subject != filter.All {
		add("subject = $%d", subject)
	}
	if sel.GradeSemester != "" {
		add("grade_semester = $%d", sel.GradeSemester)
	}
	if sel.Chapter != "" {
		add("chapter = $%d", sel.Chapter)
	}
	if sel.Tag != "" {
		// jsonb_exists instead of the ? operator, which trips query parsers
		add("jsonb_exists(knowledge_tags, $%d)", sel.Tag)
	}
	if len(conds) > 0 {
		b.WriteString("\nwhere ")
		b.WriteString(strings.Join(conds, " and "))
	}
	args = append(args, limit)
	fmt.Fprintf(&b, "\norder by created_at desc\nlimit $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var tagsJSON []byte
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Question, &e.Answer, &e.Explanation,
			&e.Subject, &e.GradeSemester, &e.Chapter, &tagsJSON, &e.Difficulty,
			&e.OriginalImageURL); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tagsJSON, &e.KnowledgeTags); err != nil {
			e.KnowledgeTags = nil
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes one entry by id.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `delete from error_items where id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts entries per subject plus a total, for the dashboard.
func (r *EntryRepo) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `select subject, count(*) from error_items group by subject`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	total := 0
	for rows.Next() {
		var subject string
		var n int
		if err := rows.Scan(&subject, &n); err != nil {
			return nil, err
		}
		out[subject] = n
		total += n
	}
	out["total"] = total
	return out, rows.Err()
}
