// Package config provides hierarchical configuration management for speclog using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.speclog/config.yml) > user config (~/.config/speclog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from.
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
	SourceFlag    ConfigSource = "flag"
)

// Sources records which layer supplied each configuration key's
// effective value.
type Sources map[string]ConfigSource

// EnvPrefix is the prefix for environment variable overrides,
// e.g. SPECLOG_SPECS_DIR=planning overrides specs_dir.
const EnvPrefix = "SPECLOG_"

// Configuration represents the speclog CLI tool configuration.
type Configuration struct {
	// SpecsDir is the directory containing per-feature folders,
	// relative to the project root. Can be set via SPECLOG_SPECS_DIR.
	SpecsDir string `koanf:"specs_dir" yaml:"specs_dir"`

	// ChangelogName is the per-feature changelog file name.
	ChangelogName string `koanf:"changelog_name" yaml:"changelog_name"`

	// ArchitectureName is the per-feature architecture notes file name.
	ArchitectureName string `koanf:"architecture_name" yaml:"architecture_name"`

	// RootChangelog is the root-level changelog that receives rollup
	// blocks when a feature is completed, relative to the project root.
	RootChangelog string `koanf:"root_changelog" yaml:"root_changelog"`
}

// Load builds the effective configuration by layering user config,
// project config, and environment variables over the defaults.
// Missing config files are not an error.
func Load() (*Configuration, error) {
	cfg, _, err := LoadWithSources()
	return cfg, err
}

// LoadWithSources is Load plus per-key provenance, for display by the
// config command.
func LoadWithSources() (*Configuration, Sources, error) {
	k := koanf.New(".")
	sources := Sources{
		"specs_dir":         SourceDefault,
		"changelog_name":    SourceDefault,
		"architecture_name": SourceDefault,
		"root_changelog":    SourceDefault,
	}

	if userPath, err := UserConfigPath(); err == nil {
		if err := mergeFileIfExists(k, userPath, SourceUser, sources); err != nil {
			return nil, nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	if err := mergeFileIfExists(k, ProjectConfigPath(), SourceProject, sources); err != nil {
		return nil, nil, fmt.Errorf("loading project config: %w", err)
	}

	envLayer := koanf.New(".")
	if err := envLayer.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, nil, fmt.Errorf("loading environment variables: %w", err)
	}
	if err := mergeLayer(k, envLayer, SourceEnv, sources); err != nil {
		return nil, nil, fmt.Errorf("merging environment variables: %w", err)
	}

	cfg := GetDefaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, nil, err
	}

	return &cfg, sources, nil
}

// mergeFileIfExists loads a YAML config file as a layer, silently skipping
// files that do not exist.
func mergeFileIfExists(k *koanf.Koanf, path string, source ConfigSource, sources Sources) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	layer := koanf.New(".")
	if err := layer.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return mergeLayer(k, layer, source, sources)
}

// mergeLayer merges a layer into the effective config and records it as
// the source of every key it sets.
func mergeLayer(k *koanf.Koanf, layer *koanf.Koanf, source ConfigSource, sources Sources) error {
	for _, key := range layer.Keys() {
		sources[key] = source
	}
	return k.Merge(layer)
}

// envToKey maps SPECLOG_SPECS_DIR to specs_dir.
func envToKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate checks that a Configuration satisfies basic constraints.
func Validate(c *Configuration) error {
	if c.SpecsDir == "" {
		return fmt.Errorf("specs_dir: required field is empty")
	}
	if c.ChangelogName == "" {
		return fmt.Errorf("changelog_name: required field is empty")
	}
	if c.ArchitectureName == "" {
		return fmt.Errorf("architecture_name: required field is empty")
	}
	if c.RootChangelog == "" {
		return fmt.Errorf("root_changelog: required field is empty")
	}
	return nil
}
