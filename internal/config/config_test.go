package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates a test from real config files: empty working directory
// and a scratch XDG config home.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(orig) })
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "specs", cfg.SpecsDir)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogName)
	assert.Equal(t, "CLAUDE.md", cfg.ArchitectureName)
	assert.Equal(t, "CHANGELOG.md", cfg.RootChangelog)
}

func TestLoadProjectConfigOverridesDefaults(t *testing.T) {
	tmp := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".speclog"), 0o755))
	content := "specs_dir: planning\nroot_changelog: HISTORY.md\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".speclog", "config.yml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "planning", cfg.SpecsDir)
	assert.Equal(t, "HISTORY.md", cfg.RootChangelog)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogName, "unset keys keep their defaults")
}

func TestLoadEnvOverridesProjectConfig(t *testing.T) {
	tmp := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".speclog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".speclog", "config.yml"),
		[]byte("specs_dir: planning\n"), 0o644))
	t.Setenv("SPECLOG_SPECS_DIR", "features")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "features", cfg.SpecsDir)
}

func TestLoadWithSourcesTracksLayers(t *testing.T) {
	tmp := chdirTemp(t)

	userDir := filepath.Join(tmp, "xdg", "speclog")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yml"),
		[]byte("architecture_name: ARCHITECTURE.md\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".speclog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".speclog", "config.yml"),
		[]byte("specs_dir: planning\n"), 0o644))

	t.Setenv("SPECLOG_ROOT_CHANGELOG", "HISTORY.md")

	cfg, sources, err := LoadWithSources()
	require.NoError(t, err)

	assert.Equal(t, "planning", cfg.SpecsDir)
	assert.Equal(t, "ARCHITECTURE.md", cfg.ArchitectureName)
	assert.Equal(t, "HISTORY.md", cfg.RootChangelog)

	assert.Equal(t, SourceProject, sources["specs_dir"])
	assert.Equal(t, SourceUser, sources["architecture_name"])
	assert.Equal(t, SourceEnv, sources["root_changelog"])
	assert.Equal(t, SourceDefault, sources["changelog_name"])
}

func TestLoadRejectsEmptyRequiredField(t *testing.T) {
	tmp := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".speclog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".speclog", "config.yml"),
		[]byte("changelog_name: \"\"\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "changelog_name")
}

func TestLoadMalformedProjectConfig(t *testing.T) {
	tmp := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".speclog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".speclog", "config.yml"),
		[]byte("specs_dir: [unclosed\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestEnvToKey(t *testing.T) {
	tests := map[string]struct {
		env  string
		want string
	}{
		"specs dir":      {env: "SPECLOG_SPECS_DIR", want: "specs_dir"},
		"root changelog": {env: "SPECLOG_ROOT_CHANGELOG", want: "root_changelog"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, envToKey(tt.env))
		})
	}
}
