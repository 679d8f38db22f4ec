package feature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(TimestampLayout, value)
	require.NoError(t, err)
	return ts
}

func TestParseChangelogTemplate(t *testing.T) {
	c := NewChangelog("001-test", mustTime(t, "2025-01-04 12:30"))
	rendered, err := RenderChangelogString(c)
	require.NoError(t, err)

	parsed, err := ParseChangelogString(rendered)
	require.NoError(t, err)

	require.Len(t, parsed.Sections, 1)
	assert.Equal(t, "2025-01-04", parsed.Sections[0].Date)
	require.Len(t, parsed.Sections[0].Entries, 1)
	entry := parsed.Sections[0].Entries[0]
	assert.Equal(t, "2025-01-04 12:30", entry.Timestamp)
	assert.Equal(t, "Feature changelog initialized", entry.Message)
	assert.Equal(t, "Created changelog for tracking feature development.", entry.Body)
}

func TestParseChangelogIgnoresFormatBlock(t *testing.T) {
	// The format-description block in the preamble shows an example entry
	// heading; it must not be parsed as a real entry.
	c := NewChangelog("001-test", mustTime(t, "2025-01-04 12:30"))
	rendered, err := RenderChangelogString(c)
	require.NoError(t, err)

	parsed, err := ParseChangelogString(rendered)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.EntryCount())
	assert.Contains(t, parsed.Preamble, "## Format")
	assert.Contains(t, parsed.Preamble, "### YYYY-MM-DD HH:MM - Brief description")
}

func TestRenderParseRoundTrip(t *testing.T) {
	tests := map[string]struct {
		build func() *Changelog
	}{
		"fresh template": {
			build: func() *Changelog {
				return NewChangelog("001-test", mustTime(t, "2025-01-04 12:30"))
			},
		},
		"multiple dates and entries": {
			build: func() *Changelog {
				c := NewChangelog("002-api", mustTime(t, "2025-01-01 08:00"))
				c.AddEntry("2025-01-01", Entry{Timestamp: "2025-01-01 09:15", Message: "Added handler"})
				c.AddEntry("2025-01-02", Entry{Timestamp: "2025-01-02 14:40", Message: "Fixed routing"})
				return c
			},
		},
		"entry with multi-line body": {
			build: func() *Changelog {
				c := NewChangelog("003-db", mustTime(t, "2025-02-10 10:00"))
				c.AddEntry("2025-02-10", Entry{
					Timestamp: "2025-02-10 11:00",
					Message:   "Schema migration",
					Body:      "Added users table.\nAdded index on email.",
				})
				return c
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first, err := RenderChangelogString(tt.build())
			require.NoError(t, err)

			parsed, err := ParseChangelogString(first)
			require.NoError(t, err)

			second, err := RenderChangelogString(parsed)
			require.NoError(t, err)

			assert.Equal(t, first, second, "render should be stable through a parse")
		})
	}
}

func TestParseChangelogKeepsHandWrittenIntro(t *testing.T) {
	input := "# t\n\n---\n\nHand-written summary.\n\n## 2025-01-04\n\n### 2025-01-04 09:00 - earlier\n"

	parsed, err := ParseChangelogString(input)
	require.NoError(t, err)
	assert.Contains(t, parsed.Preamble, "Hand-written summary.")
	require.Len(t, parsed.Sections, 1)

	rendered, err := RenderChangelogString(parsed)
	require.NoError(t, err)
	assert.Equal(t, input, rendered, "hand-written text before the first date heading must survive a rewrite")
}

func TestParseChangelogKeepsIntroWithoutSections(t *testing.T) {
	input := "# t\n\n---\n\nNotes only, no entries yet.\n"

	parsed, err := ParseChangelogString(input)
	require.NoError(t, err)
	assert.Empty(t, parsed.Sections)

	rendered, err := RenderChangelogString(parsed)
	require.NoError(t, err)
	assert.Equal(t, input, rendered)
}

func TestParseChangelogErrors(t *testing.T) {
	tests := map[string]struct {
		input   string
		wantErr string
	}{
		"missing rule": {
			input:   "# Feature x - Development Changelog\n\nno rule here\n",
			wantErr: "missing",
		},
		"entry before date heading": {
			input:   "# t\n\n---\n\n### 2025-01-04 10:00 - orphan\n",
			wantErr: "before any date heading",
		},
		"stray text under date heading": {
			input:   "# t\n\n---\n\n## 2025-01-04\n\nloose text\n",
			wantErr: "unexpected text",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChangelogString(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderBodyKeepsEveryDateHeading(t *testing.T) {
	c := NewChangelog("001-test", mustTime(t, "2025-01-01 08:00"))
	c.AddEntry("2025-01-01", Entry{Timestamp: "2025-01-01 09:00", Message: "A"})
	c.AddEntry("2025-01-02", Entry{Timestamp: "2025-01-02 09:00", Message: "B"})

	body, err := RenderBody(c)
	require.NoError(t, err)

	assert.NotContains(t, body, "Development Changelog", "preamble must not leak into the body")
	assert.Contains(t, body, "## 2025-01-01")
	assert.Contains(t, body, "## 2025-01-02")
	assert.Contains(t, body, "### 2025-01-01 09:00 - A")
	assert.Contains(t, body, "### 2025-01-02 09:00 - B")
}
