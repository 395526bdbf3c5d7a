// Package tags manages the user-defined knowledge tags, persisted as a single
// client-local blob. Subjects form a fixed, closed set; tag names are unique
// within a subject and keep insertion order.
package tags

import "encoding/json"

// Subject is the top-level knowledge domain bucket.
type Subject string

const (
	Math      Subject = "math"
	English   Subject = "english"
	Physics   Subject = "physics"
	Chemistry Subject = "chemistry"
	Other     Subject = "other"
)

// Subjects in display order. ListFlat and Stats follow this order.
var Subjects = []Subject{Math, English, Physics, Chemistry, Other}

// Valid reports whether s is one of the five known subjects.
func (s Subject) Valid() bool {
	switch s {
	case Math, English, Physics, Chemistry, Other:
		return true
	}
	return false
}

const DefaultCategory = "default"

// BlobKey is the persisted blob name, kept compatible with the web client.
const BlobKey = "wrongnotebook_custom_tags"

// Tag is one user-defined knowledge tag.
type Tag struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Data holds every subject's tags. A struct (not a map) so the serialized
// key order is stable: math, english, physics, chemistry, other.
type Data struct {
	Math      []Tag `json:"math"`
	English   []Tag `json:"english"`
	Physics   []Tag `json:"physics"`
	Chemistry []Tag `json:"chemistry"`
	Other     []Tag `json:"other"`
}

func emptyData() Data {
	return Data{
		Math:      []Tag{},
		English:   []Tag{},
		Physics:   []Tag{},
		Chemistry: []Tag{},
		Other:     []Tag{},
	}
}

func (d *Data) subject(s Subject) *[]Tag {
	switch s {
	case Math:
		return &d.Math
	case English:
		return &d.English
	case Physics:
		return &d.Physics
	case Chemistry:
		return &d.Chemistry
	default:
		return &d.Other
	}
}

// decode parses a persisted blob. The legacy shape stored bare name strings
// per subject; it is matched explicitly and converted once. The second result
// reports whether any subject needed migration.
func decode(raw []byte) (Data, bool, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return emptyData(), false, err
	}

	d := emptyData()
	migrated := false
	for _, s := range Subjects {
		rawList, ok := doc[string(s)]
		if !ok {
			continue
		}
		var cur []Tag
		if err := json.Unmarshal(rawList, &cur); err == nil {
			if cur == nil {
				cur = []Tag{}
			}
			*d.subject(s) = cur
			continue
		}
		var legacy []string
		if err := json.Unmarshal(rawList, &legacy); err == nil && len(legacy) > 0 {
			list := make([]Tag, 0, len(legacy))
			for _, name := range legacy {
				list = append(list, Tag{Name: name, Category: DefaultCategory})
			}
			*d.subject(s) = list
			migrated = true
		}
		// anything else is malformed for this subject; keep it empty
	}
	return d, migrated, nil
}

// normalizeList converts one imported subject list. Bare strings become tags
// with the default category; structured elements pass through; anything else
// is dropped. The bool is false when the value is not a sequence at all.
func normalizeList(raw json.RawMessage) ([]Tag, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	list := make([]Tag, 0, len(elems))
	for _, el := range elems {
		var name string
		if err := json.Unmarshal(el, &name); err == nil {
			list = append(list, Tag{Name: name, Category: DefaultCategory})
			continue
		}
		var t Tag
		if err := json.Unmarshal(el, &t); err == nil {
			list = append(list, t)
		}
	}
	return list, true
}
