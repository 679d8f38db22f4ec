package config

// Default file names follow the documentation convention this tool manages:
// each feature directory carries a CHANGELOG.md and a CLAUDE.md, and the
// project root carries a CHANGELOG.md that accumulates completed features.
const (
	DefaultSpecsDir         = "specs"
	DefaultChangelogName    = "CHANGELOG.md"
	DefaultArchitectureName = "CLAUDE.md"
	DefaultRootChangelog    = "CHANGELOG.md"
)

// GetDefaults returns the default configuration values.
func GetDefaults() Configuration {
	return Configuration{
		SpecsDir:         DefaultSpecsDir,
		ChangelogName:    DefaultChangelogName,
		ArchitectureName: DefaultArchitectureName,
		RootChangelog:    DefaultRootChangelog,
	}
}
