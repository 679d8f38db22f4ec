// Package feature implements the feature changelog manager.
//
// This package implements:
//   - Parsing and rendering of per-feature CHANGELOG.md documents
//     (dated sections of timestamped entries)
//   - Parsing and rendering of per-feature CLAUDE.md architecture
//     documents (fixed template with a status field)
//   - The create, log, update, and complete operations over those
//     documents, including the rollup of a completed feature's
//     changelog into the root CHANGELOG.md
//
// All file access goes through an injected afero.Fs so operations can be
// tested against an in-memory file system.
package feature
