package feature

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/ariel-frischer/speclog/internal/config"
)

// Manager performs the create, log, update, and complete operations for one
// project. It is stateless between calls: every operation is a function of
// its arguments and the file system.
type Manager struct {
	fs   afero.Fs
	root string
	cfg  config.Configuration

	// Now supplies the current time. Overridable in tests to pin dates.
	Now func() time.Time
}

// NewManager creates a Manager rooted at the given project directory.
func NewManager(fs afero.Fs, root string, cfg config.Configuration) *Manager {
	return &Manager{fs: fs, root: root, cfg: cfg, Now: time.Now}
}

// FeatureDir returns the directory for a feature id.
func (m *Manager) FeatureDir(featureID string) string {
	return filepath.Join(m.root, m.cfg.SpecsDir, featureID)
}

// ChangelogPath returns the feature's changelog path.
func (m *Manager) ChangelogPath(featureID string) string {
	return filepath.Join(m.FeatureDir(featureID), m.cfg.ChangelogName)
}

// ArchitecturePath returns the feature's architecture document path.
func (m *Manager) ArchitecturePath(featureID string) string {
	return filepath.Join(m.FeatureDir(featureID), m.cfg.ArchitectureName)
}

// RootChangelogPath returns the project-level changelog path.
func (m *Manager) RootChangelogPath() string {
	return filepath.Join(m.root, m.cfg.RootChangelog)
}

// CheckFeatureDir verifies that the feature directory exists. The tool never
// creates the feature directory itself - only files inside it.
func (m *Manager) CheckFeatureDir(featureID string) error {
	dir := m.FeatureDir(featureID)
	info, err := m.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return &MissingPathError{
			Path: dir,
			Hint: fmt.Sprintf("create it first: mkdir -p %s", dir),
		}
	}
	return nil
}

// CreateResult reports which documents Create wrote.
type CreateResult struct {
	ChangelogPath       string
	ChangelogCreated    bool
	ArchitecturePath    string
	ArchitectureCreated bool
}

// Create writes the feature's changelog and architecture document from their
// templates. Each file is written only if absent; existing files are left
// untouched. Calling Create twice is safe.
func (m *Manager) Create(featureID string) (*CreateResult, error) {
	if err := m.CheckFeatureDir(featureID); err != nil {
		return nil, err
	}

	res := &CreateResult{
		ChangelogPath:    m.ChangelogPath(featureID),
		ArchitecturePath: m.ArchitecturePath(featureID),
	}
	now := m.Now()

	exists, err := afero.Exists(m.fs, res.ChangelogPath)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", res.ChangelogPath, err)
	}
	if !exists {
		content, err := RenderChangelogString(NewChangelog(featureID, now))
		if err != nil {
			return nil, fmt.Errorf("rendering changelog template: %w", err)
		}
		if err := m.writeFileAtomic(res.ChangelogPath, content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", res.ChangelogPath, err)
		}
		res.ChangelogCreated = true
	}

	exists, err = afero.Exists(m.fs, res.ArchitecturePath)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", res.ArchitecturePath, err)
	}
	if !exists {
		content, err := RenderArchitectureString(NewArchitectureDoc(featureID, now))
		if err != nil {
			return nil, fmt.Errorf("rendering architecture template: %w", err)
		}
		if err := m.writeFileAtomic(res.ArchitecturePath, content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", res.ArchitecturePath, err)
		}
		res.ArchitectureCreated = true
	}

	return res, nil
}

// LogResult reports the entry Log appended.
type LogResult struct {
	Path      string
	Timestamp string
	Message   string
	// Initialized is set when the documents were absent and Log created
	// them first, via the same step Create uses.
	Initialized *CreateResult
}

// Log appends a timestamped entry to the feature's changelog, grouping
// same-date entries under a single date heading with the newest entry first.
// If the documents do not exist yet they are created first.
func (m *Manager) Log(featureID, message string) (*LogResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if err := m.CheckFeatureDir(featureID); err != nil {
		return nil, err
	}

	res := &LogResult{Path: m.ChangelogPath(featureID), Message: message}

	exists, err := afero.Exists(m.fs, res.Path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", res.Path, err)
	}
	if !exists {
		created, err := m.Create(featureID)
		if err != nil {
			return nil, err
		}
		res.Initialized = created
	}

	c, err := m.readChangelog(res.Path)
	if err != nil {
		return nil, err
	}

	now := m.Now()
	res.Timestamp = now.Format(TimestampLayout)
	c.AddEntry(now.Format(DateLayout), Entry{
		Timestamp: res.Timestamp,
		Message:   message,
	})

	content, err := RenderChangelogString(c)
	if err != nil {
		return nil, fmt.Errorf("rendering changelog: %w", err)
	}
	if err := m.writeFileAtomic(res.Path, content); err != nil {
		return nil, fmt.Errorf("writing %s: %w", res.Path, err)
	}

	return res, nil
}

// Reminder is the read-only payload returned by Update: the architecture
// document path and the sections the caller should now edit by hand.
type Reminder struct {
	Path     string
	Sections []string
}

// Update performs no mutation. It verifies the architecture document exists
// and returns the checklist of sections to review.
func (m *Manager) Update(featureID string) (*Reminder, error) {
	if err := m.CheckFeatureDir(featureID); err != nil {
		return nil, err
	}

	path := m.ArchitecturePath(featureID)
	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, &MissingPathError{
			Path: path,
			Hint: fmt.Sprintf("run 'speclog create %s' first", featureID),
		}
	}

	return &Reminder{Path: path, Sections: EditableSections()}, nil
}

// readChangelog loads and parses a feature changelog.
func (m *Manager) readChangelog(path string) (*Changelog, error) {
	f, err := m.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := ParseChangelog(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// writeFileAtomic writes content to a temp file in the target directory and
// renames it into place, so an interrupted write never truncates the
// original document.
func (m *Manager) writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(m.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write([]byte(content)); err != nil {
		tmp.Close()
		m.fs.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		m.fs.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := m.fs.Rename(tmpName, path); err != nil {
		m.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
