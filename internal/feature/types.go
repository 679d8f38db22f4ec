package feature

import (
	"regexp"
	"strings"
	"unicode"
)

// Timestamp layouts used throughout the package.
const (
	// DateLayout is the calendar-date format used for section headings
	// and status dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the minute-precision format used for entry headings.
	TimestampLayout = "2006-01-02 15:04"
)

// Changelog represents a parsed per-feature CHANGELOG.md.
// The preamble is kept verbatim so hand edits to the header survive a
// rewrite; sections are ordered newest-first, matching the on-disk layout
// where new date sections are inserted directly below the header block.
type Changelog struct {
	// Preamble is the verbatim header text up to and including the
	// closing "---" rule that separates it from the dated sections.
	// Hand-written notes between the rule and the first date heading
	// are folded in here by the parser.
	Preamble string
	Sections []DateSection
}

// DateSection groups all entries logged on one calendar date under a
// single "## YYYY-MM-DD" heading. Within a section the most recently
// logged entry appears first.
type DateSection struct {
	Date    string // YYYY-MM-DD
	Entries []Entry
}

// Entry is a single timestamped changelog entry.
type Entry struct {
	Timestamp string // YYYY-MM-DD HH:MM
	Message   string
	// Body holds any free-text lines under the entry heading, verbatim,
	// without trailing blank lines. Empty for entries created by log.
	Body string
}

// Section returns the section for the given date, or nil if none exists.
func (c *Changelog) Section(date string) *DateSection {
	for i := range c.Sections {
		if c.Sections[i].Date == date {
			return &c.Sections[i]
		}
	}
	return nil
}

// EntryCount returns the total number of entries across all sections.
func (c *Changelog) EntryCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Entries)
	}
	return n
}

// AddEntry inserts an entry for the given date, grouping same-date entries
// under one heading. When the date section already exists, the entry is
// placed first within it; otherwise a new section is inserted before all
// existing sections, directly below the header block.
func (c *Changelog) AddEntry(date string, entry Entry) {
	if s := c.Section(date); s != nil {
		s.Entries = append([]Entry{entry}, s.Entries...)
		return
	}
	section := DateSection{Date: date, Entries: []Entry{entry}}
	c.Sections = append([]DateSection{section}, c.Sections...)
}

var featureNumberPrefix = regexp.MustCompile(`^\d+-`)

// DeriveTitle converts a feature id like "001-user-auth" into a display
// title like "User Auth": the numeric prefix is stripped and the remaining
// hyphen-separated words are capitalized. Ids with no words beyond the
// numeric prefix fall back to the raw id, so the generated heading always
// carries a non-empty title.
func DeriveTitle(featureID string) string {
	slug := featureNumberPrefix.ReplaceAllString(featureID, "")
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	title := strings.TrimSpace(strings.Join(words, " "))
	if title == "" {
		return featureID
	}
	return title
}
