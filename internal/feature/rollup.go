package feature

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// CompleteResult reports what the complete operation changed.
type CompleteResult struct {
	ArchitecturePath  string
	StatusUpdated     bool
	CompletedDate     string
	RootChangelogPath string
	RolledUp          bool
}

// Complete marks a feature finished: the architecture document's status is
// set to Complete with today's date, and the feature changelog's dated body
// is appended to the root changelog. The feature's own changelog is left in
// place. A missing architecture document or root changelog downgrades the
// corresponding step to a skip; a missing feature changelog is an error.
func (m *Manager) Complete(featureID string) (*CompleteResult, error) {
	if err := m.CheckFeatureDir(featureID); err != nil {
		return nil, err
	}

	changelogPath := m.ChangelogPath(featureID)
	exists, err := afero.Exists(m.fs, changelogPath)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", changelogPath, err)
	}
	if !exists {
		return nil, &MissingPathError{
			Path: changelogPath,
			Hint: fmt.Sprintf("run 'speclog create %s' first", featureID),
		}
	}

	res := &CompleteResult{
		ArchitecturePath:  m.ArchitecturePath(featureID),
		CompletedDate:     m.Now().Format(DateLayout),
		RootChangelogPath: m.RootChangelogPath(),
	}

	if err := m.completeArchitecture(res); err != nil {
		return nil, err
	}

	if err := m.rollupChangelog(featureID, changelogPath, res); err != nil {
		return nil, err
	}

	return res, nil
}

// completeArchitecture flips the status field on the parsed document and
// writes it back. Skips silently when the document does not exist.
func (m *Manager) completeArchitecture(res *CompleteResult) error {
	exists, err := afero.Exists(m.fs, res.ArchitecturePath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", res.ArchitecturePath, err)
	}
	if !exists {
		return nil
	}

	f, err := m.fs.Open(res.ArchitecturePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", res.ArchitecturePath, err)
	}
	doc, err := ParseArchitecture(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", res.ArchitecturePath, err)
	}

	doc.MarkComplete(res.CompletedDate)

	content, err := RenderArchitectureString(doc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", res.ArchitecturePath, err)
	}
	if err := m.writeFileAtomic(res.ArchitecturePath, content); err != nil {
		return fmt.Errorf("writing %s: %w", res.ArchitecturePath, err)
	}

	res.StatusUpdated = true
	return nil
}

// rollupChangelog appends the feature changelog's dated body to the root
// changelog under a completion heading. The copy preserves every date
// heading. Skips when the project has no root changelog.
func (m *Manager) rollupChangelog(featureID, changelogPath string, res *CompleteResult) error {
	exists, err := afero.Exists(m.fs, res.RootChangelogPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", res.RootChangelogPath, err)
	}
	if !exists {
		return nil
	}

	c, err := m.readChangelog(changelogPath)
	if err != nil {
		return err
	}
	body, err := RenderBody(c)
	if err != nil {
		return fmt.Errorf("rendering rollup body: %w", err)
	}

	existing, err := afero.ReadFile(m.fs, res.RootChangelogPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", res.RootChangelogPath, err)
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n## Feature %s - Completed %s\n", featureID, res.CompletedDate)
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	if err := m.writeFileAtomic(res.RootChangelogPath, b.String()); err != nil {
		return fmt.Errorf("writing %s: %w", res.RootChangelogPath, err)
	}

	res.RolledUp = true
	return nil
}
