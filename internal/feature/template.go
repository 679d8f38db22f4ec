package feature

import (
	"fmt"
	"time"
)

// changelogPreamble is the fixed header block written at the top of every
// new feature changelog. It ends with the "---" rule that separates the
// static header from the dated sections.
const changelogPreamble = `# Feature %s - Development Changelog

This file tracks all changes, decisions, and progress for this feature.

## Format

Each entry follows this format:

### YYYY-MM-DD HH:MM - Brief description

Details about what changed and why.

---
`

// NewChangelog builds the initial changelog for a feature, containing a
// single dated section with one initialization entry stamped at now.
func NewChangelog(featureID string, now time.Time) *Changelog {
	c := &Changelog{
		Preamble: fmt.Sprintf(changelogPreamble, featureID),
	}
	c.AddEntry(now.Format(DateLayout), Entry{
		Timestamp: now.Format(TimestampLayout),
		Message:   "Feature changelog initialized",
		Body:      "Created changelog for tracking feature development.",
	})
	return c
}

// NewArchitectureDoc builds the initial architecture document for a feature:
// status In Progress, started today, and the fixed empty sections.
func NewArchitectureDoc(featureID string, now time.Time) *ArchitectureDoc {
	return &ArchitectureDoc{
		FeatureID: featureID,
		Title:     DeriveTitle(featureID),
		Status:    StatusInProgress,
		Started:   now.Format(DateLayout),
		Sections: []ArchSection{
			{Name: "Overview", Body: "[Describe what this feature does and why it exists]"},
			{Name: "Important Files", Body: "- [ ] List the key files for this feature"},
			{Name: "Architecture", Body: "[Describe the design approach and component boundaries]"},
			{Name: "Dependencies", Body: "[List internal and external dependencies]"},
			{Name: "Implementation Notes", Body: "[Record decisions, tradeoffs, and gotchas]"},
			{Name: "Testing", Body: "- [ ] Unit tests\n- [ ] Integration tests"},
			{Name: "Next Steps", Body: "- [ ] Outline the remaining work"},
		},
	}
}
