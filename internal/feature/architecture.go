package feature

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Status is the lifecycle state recorded in an architecture document.
type Status int

const (
	// StatusInProgress marks a feature under active development.
	StatusInProgress Status = iota
	// StatusComplete marks a finished feature whose changelog has been
	// rolled up into the root changelog.
	StatusComplete
)

// Status marker strings as they appear in CLAUDE.md.
const (
	statusInProgressMarker = "🟡 In Progress"
	statusCompleteMarker   = "✅ Complete"
)

// String returns the marker written to the document for this status.
func (s Status) String() string {
	if s == StatusComplete {
		return statusCompleteMarker
	}
	return statusInProgressMarker
}

// ParseStatus maps a document marker back to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.TrimSpace(s) {
	case statusInProgressMarker:
		return StatusInProgress, nil
	case statusCompleteMarker:
		return StatusComplete, nil
	default:
		return StatusInProgress, fmt.Errorf("unknown status marker %q", s)
	}
}

// ArchSection is one named block of an architecture document. The body is
// kept verbatim so hand edits survive a status rewrite.
type ArchSection struct {
	Name string
	Body string
}

// ArchitectureDoc is the structured form of a per-feature CLAUDE.md.
// The status transition in complete operates on this record rather than on
// raw lines, so text elsewhere in the document that happens to contain the
// word "Status" is never touched.
type ArchitectureDoc struct {
	FeatureID string
	Title     string
	Status    Status
	Started   string // YYYY-MM-DD
	Completed string // YYYY-MM-DD, empty until the feature is completed
	Sections  []ArchSection
}

// ArchitectureSections lists the template section names in document order.
func ArchitectureSections() []string {
	return []string{
		"Overview",
		"Important Files",
		"Architecture",
		"Dependencies",
		"Implementation Notes",
		"Testing",
		"Next Steps",
	}
}

// EditableSections lists the sections the update operation reminds the
// caller to fill in by hand.
func EditableSections() []string {
	return []string{
		"Important Files",
		"Architecture",
		"Dependencies",
		"Implementation Notes",
	}
}

var (
	archTitlePattern   = regexp.MustCompile(`^# Feature (\S+): (.+)$`)
	archSectionPattern = regexp.MustCompile(`^## (.+?)\s*$`)
)

// Field label prefixes in the document header.
const (
	statusFieldPrefix    = "**Status**: "
	startedFieldPrefix   = "**Started**: "
	completedFieldPrefix = "**Completed**: "
)

// ParseArchitecture reads a CLAUDE.md document into its structured form.
func ParseArchitecture(r io.Reader) (*ArchitectureDoc, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &ArchitectureDoc{}
	var section *ArchSection
	var body []string

	flushSection := func() {
		if section == nil {
			return
		}
		section.Body = strings.Trim(strings.Join(body, "\n"), "\n")
		doc.Sections = append(doc.Sections, *section)
		section = nil
		body = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if doc.Title == "" {
			if m := archTitlePattern.FindStringSubmatch(line); m != nil {
				doc.FeatureID = m[1]
				doc.Title = m[2]
				continue
			}
		}

		if m := archSectionPattern.FindStringSubmatch(line); m != nil {
			flushSection()
			section = &ArchSection{Name: m[1]}
			continue
		}

		if section != nil {
			body = append(body, line)
			continue
		}

		switch {
		case strings.HasPrefix(line, statusFieldPrefix):
			status, err := ParseStatus(strings.TrimPrefix(line, statusFieldPrefix))
			if err != nil {
				return nil, fmt.Errorf("parsing architecture document: %w", err)
			}
			doc.Status = status
		case strings.HasPrefix(line, startedFieldPrefix):
			doc.Started = strings.TrimSpace(strings.TrimPrefix(line, startedFieldPrefix))
		case strings.HasPrefix(line, completedFieldPrefix):
			doc.Completed = strings.TrimSpace(strings.TrimPrefix(line, completedFieldPrefix))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading architecture document: %w", err)
	}
	flushSection()

	if doc.Title == "" {
		return nil, fmt.Errorf("malformed architecture document: missing \"# Feature <id>: <title>\" heading")
	}
	return doc, nil
}

// ParseArchitectureString parses an architecture document from a string.
func ParseArchitectureString(s string) (*ArchitectureDoc, error) {
	return ParseArchitecture(strings.NewReader(s))
}

// RenderArchitecture writes the document back out as markdown. The Completed
// line, when set, sits directly after the Status line.
func RenderArchitecture(doc *ArchitectureDoc, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Feature %s: %s\n\n", doc.FeatureID, doc.Title)
	fmt.Fprintf(&b, "%s%s\n", statusFieldPrefix, doc.Status)
	if doc.Completed != "" {
		fmt.Fprintf(&b, "%s%s\n", completedFieldPrefix, doc.Completed)
	}
	fmt.Fprintf(&b, "%s%s\n", startedFieldPrefix, doc.Started)

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Name)
		if s.Body != "" {
			fmt.Fprintf(&b, "\n%s\n", s.Body)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderArchitectureString is a convenience function that renders to a string.
func RenderArchitectureString(doc *ArchitectureDoc) (string, error) {
	var b strings.Builder
	if err := RenderArchitecture(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MarkComplete transitions the document to the completed state, stamping the
// completion date. Completing an already-complete document refreshes the date.
func (doc *ArchitectureDoc) MarkComplete(date string) {
	doc.Status = StatusComplete
	doc.Completed = date
}
