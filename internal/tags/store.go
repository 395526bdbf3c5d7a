package tags

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"wrong-notebook/internal/kv"
)

// Store is the durable tag repository. Every mutator persists before
// returning. Persistence is best-effort: read/write/parse failures are logged
// and degrade to "empty" or "no-op" so the review pipeline is never blocked.
type Store struct {
	mu  sync.Mutex
	kv  kv.Store
	key string
}

func NewStore(s kv.Store) *Store {
	return &Store{kv: s, key: BlobKey}
}

// Load returns the current tag data, migrating the legacy name-only shape on
// first read. A migrated structure is re-persisted immediately so later loads
// see the current form. Malformed data is treated as empty.
func (s *Store) Load() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load assumes s.mu is held.
func (s *Store) load() Data {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		log.Printf("tags: read failed, starting empty: %v", err)
		return emptyData()
	}
	if !ok {
		return emptyData()
	}
	d, migrated, err := decode(raw)
	if err != nil {
		log.Printf("tags: stored blob unparseable, starting empty: %v", err)
		return emptyData()
	}
	if migrated {
		s.persist(d)
	}
	return d
}

// persist assumes s.mu is held.
func (s *Store) persist(d Data) {
	b, err := json.MarshalIndent(&d, "", "  ")
	if err != nil {
		log.Printf("tags: marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(s.key, b); err != nil {
		log.Printf("tags: write failed: %v", err)
	}
}

// Add appends a tag to the subject. Blank names (after trimming) and names
// already present in the subject are rejected without mutation.
func (s *Store) Add(subject Subject, name, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || !subject.Valid() {
		return false
	}
	if category == "" {
		category = DefaultCategory
	}

	d := s.load()
	list := d.subject(subject)
	for _, t := range *list {
		if t.Name == name {
			return false
		}
	}
	*list = append(*list, Tag{Name: name, Category: category})
	s.persist(d)
	return true
}

// Remove deletes the first tag with the given name from the subject.
func (s *Store) Remove(subject Subject, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !subject.Valid() {
		return false
	}
	d := s.load()
	list := d.subject(subject)
	for i, t := range *list {
		if t.Name == name {
			*list = append((*list)[:i], (*list)[i+1:]...)
			s.persist(d)
			return true
		}
	}
	return false
}

// ListFlat returns every tag name across all subjects, in subject order, each
// subject's tags in store order.
func (s *Store) ListFlat() []string {
	d := s.Load()
	var out []string
	for _, subj := range Subjects {
		for _, t := range *d.subject(subj) {
			out = append(out, t.Name)
		}
	}
	return out
}

// IsCustom reports whether name is a user-defined tag in any subject.
func (s *Store) IsCustom(name string) bool {
	for _, n := range s.ListFlat() {
		if n == name {
			return true
		}
	}
	return false
}

// Export serializes the full structure, pretty-printed, subjects in fixed
// order.
func (s *Store) Export() string {
	d := s.Load()
	b, err := json.MarshalIndent(&d, "", "  ")
	if err != nil {
		log.Printf("tags: export marshal failed: %v", err)
		return "{}"
	}
	return string(b)
}

// Import replaces each subject list present in the serialized input; subjects
// absent from the input are untouched. Bare-string elements are normalized to
// structured tags. Returns false on parse failure, mutating nothing.
func (s *Store) Import(serialized string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(serialized), &doc); err != nil {
		return false
	}

	d := s.load()
	for _, subj := range Subjects {
		raw, ok := doc[string(subj)]
		if !ok {
			continue
		}
		list, isSeq := normalizeList(raw)
		if !isSeq {
			continue
		}
		*d.subject(subj) = list
	}
	s.persist(d)
	return true
}

// Clear removes the persisted blob entirely.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(s.key); err != nil {
		log.Printf("tags: clear failed: %v", err)
	}
}

// Stats returns the tag count per subject plus a "total" key.
func (s *Store) Stats() map[string]int {
	d := s.Load()
	out := make(map[string]int, len(Subjects)+1)
	total := 0
	for _, subj := range Subjects {
		n := len(*d.subject(subj))
		out[string(subj)] = n
		total += n
	}
	out["total"] = total
	return out
}
