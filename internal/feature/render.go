package feature

import (
	"fmt"
	"io"
	"strings"
)

// RenderChangelog writes the changelog back out as markdown. The preamble is
// emitted verbatim, followed by one blank line and the dated sections.
// The function is idempotent - given the same input, it produces identical
// output, and a parse of the output yields an equal Changelog.
func RenderChangelog(c *Changelog, w io.Writer) error {
	preamble := c.Preamble
	if !strings.HasSuffix(preamble, "\n") {
		preamble += "\n"
	}
	if _, err := io.WriteString(w, preamble); err != nil {
		return fmt.Errorf("rendering preamble: %w", err)
	}

	return renderSections(c.Sections, w)
}

// RenderChangelogString is a convenience function that renders to a string.
func RenderChangelogString(c *Changelog) (string, error) {
	var b strings.Builder
	if err := RenderChangelog(c, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderBody renders only the dated sections, without the preamble.
// This is the text copied into the root changelog during rollup; every date
// heading is preserved.
func RenderBody(c *Changelog) (string, error) {
	var b strings.Builder
	if err := renderSections(c.Sections, &b); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// renderSections writes the dated sections with a blank line before each
// heading and after each entry.
func renderSections(sections []DateSection, w io.Writer) error {
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "\n## %s\n", s.Date); err != nil {
			return fmt.Errorf("rendering section %s: %w", s.Date, err)
		}
		for _, e := range s.Entries {
			if err := renderEntry(e, w); err != nil {
				return fmt.Errorf("rendering entry %q: %w", e.Message, err)
			}
		}
	}
	return nil
}

// renderEntry writes a single entry heading and its optional body.
func renderEntry(e Entry, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n### %s - %s\n", e.Timestamp, e.Message); err != nil {
		return err
	}
	if e.Body != "" {
		if _, err := io.WriteString(w, "\n"+e.Body+"\n"); err != nil {
			return err
		}
	}
	return nil
}
