// Package curriculum holds the built-in knowledge-tag taxonomy: a fixed
// four-level tree (grade/semester → chapter → section → subsection) compiled
// into the binary and shared read-only.
package curriculum

// Subsection is the finest taxonomy level.
type Subsection struct {
	Title string
	Tags  []string
}

// Section groups subsections and can carry tags of its own.
type Section struct {
	Title       string
	Tags        []string
	Subsections []Subsection
}

// Chapter is one textbook chapter within a grade/semester.
type Chapter struct {
	Name     string
	Sections []Section
}

type gradeUnit struct {
	Key      string
	Chapters []Chapter
}

// GradeSemesters returns the grade/semester keys in declaration order.
func GradeSemesters() []string {
	out := make([]string, 0, len(tree))
	for _, g := range tree {
		out = append(out, g.Key)
	}
	return out
}

// ChaptersOf returns the chapters of a grade/semester, empty for an unknown
// key.
func ChaptersOf(gradeSemester string) []Chapter {
	for _, g := range tree {
		if g.Key == gradeSemester {
			return g.Chapters
		}
	}
	return nil
}

// FindChapter looks a chapter up by name within a grade/semester.
func FindChapter(gradeSemester, name string) (Chapter, bool) {
	for _, c := range ChaptersOf(gradeSemester) {
		if c.Name == name {
			return c, true
		}
	}
	return Chapter{}, false
}

// TagsOf flattens a chapter's tags: for each section, its own tags followed by
// its subsections' tags, in declaration order. Duplicates are preserved; a tag
// declared in two subsections appears twice. That mirrors how the picker has
// always listed them.
func TagsOf(c Chapter) []string {
	var out []string
	for _, sec := range c.Sections {
		out = append(out, sec.Tags...)
		for _, sub := range sec.Subsections {
			out = append(out, sub.Tags...)
		}
	}
	return out
}
