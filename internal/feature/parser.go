package feature

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	dateHeadingPattern  = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2})\s*$`)
	entryHeadingPattern = regexp.MustCompile(`^### (\d{4}-\d{2}-\d{2} \d{2}:\d{2}) - (.*)$`)
)

// ParseChangelog reads a per-feature CHANGELOG.md from an io.Reader.
// Everything up to and including the first "---" rule is kept verbatim as
// the preamble; the remainder is parsed into dated sections. Entry headings
// inside the preamble (the format-description block) are deliberately not
// treated as entries. Hand-written text between the rule and the first date
// heading is folded into the preamble so it survives a rewrite.
func ParseChangelog(r io.Reader) (*Changelog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var preamble strings.Builder
	foundRule := false
	for scanner.Scan() {
		line := scanner.Text()
		preamble.WriteString(line)
		preamble.WriteString("\n")
		if strings.TrimRight(line, " \t") == "---" {
			foundRule = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}
	if !foundRule {
		return nil, fmt.Errorf("malformed changelog: missing \"---\" rule after the header block")
	}

	c := &Changelog{Preamble: preamble.String()}
	if err := parseSections(scanner, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseChangelogString parses a changelog from a string.
func ParseChangelogString(s string) (*Changelog, error) {
	return ParseChangelog(strings.NewReader(s))
}

// parseSections consumes the dated body after the preamble rule.
func parseSections(scanner *bufio.Scanner, c *Changelog) error {
	var section *DateSection
	var entry *Entry
	var body []string
	// Hand-written lines between the preamble rule and the first date
	// heading; folded into the preamble so they round-trip.
	var intro []string

	flushIntro := func() {
		for len(intro) > 0 && strings.TrimSpace(intro[0]) == "" {
			intro = intro[1:]
		}
		for len(intro) > 0 && strings.TrimSpace(intro[len(intro)-1]) == "" {
			intro = intro[:len(intro)-1]
		}
		if len(intro) > 0 {
			c.Preamble += "\n" + strings.Join(intro, "\n") + "\n"
		}
		intro = nil
	}
	flushEntry := func() {
		if entry == nil {
			return
		}
		entry.Body = strings.Trim(strings.Join(body, "\n"), "\n")
		section.Entries = append(section.Entries, *entry)
		entry = nil
		body = nil
	}
	flushSection := func() {
		flushEntry()
		if section != nil {
			c.Sections = append(c.Sections, *section)
			section = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()

		if m := dateHeadingPattern.FindStringSubmatch(line); m != nil {
			flushIntro()
			flushSection()
			section = &DateSection{Date: m[1]}
			continue
		}

		if m := entryHeadingPattern.FindStringSubmatch(line); m != nil {
			if section == nil {
				return fmt.Errorf("malformed changelog: entry %q appears before any date heading", line)
			}
			flushEntry()
			entry = &Entry{Timestamp: m[1], Message: m[2]}
			continue
		}

		if entry != nil {
			body = append(body, line)
			continue
		}
		if section == nil {
			intro = append(intro, line)
			continue
		}
		if strings.TrimSpace(line) != "" {
			return fmt.Errorf("malformed changelog: unexpected text %q under date heading %s", line, section.Date)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}

	flushIntro()
	flushSection()
	return nil
}
