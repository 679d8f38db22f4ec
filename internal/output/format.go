// Package output provides terminal output formatting utilities for the speclog CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// Printer writes styled status lines. When Plain is true all styling is
// suppressed and plain ASCII markers are used instead.
type Printer struct {
	Out   io.Writer
	Plain bool
}

// NewPrinter creates a Printer for the given writer.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{Out: out, Plain: plain}
}

// Success prints a green checkmark line for a completed action.
func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.Plain {
		fmt.Fprintf(p.Out, "[ok] %s\n", msg)
		return
	}
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(p.Out, "%s %s\n", green("✓"), msg)
}

// Warning prints a yellow warning line for a soft, non-fatal condition.
func (p *Printer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.Plain {
		fmt.Fprintf(p.Out, "[warn] %s\n", msg)
		return
	}
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(p.Out, "%s %s\n", yellow("⚠"), msg)
}

// Info prints a neutral informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Checklist prints a bulleted list of items for the caller to act on.
func (p *Printer) Checklist(items []string) {
	for _, item := range items {
		if p.Plain {
			fmt.Fprintf(p.Out, "  - %s\n", item)
			continue
		}
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(p.Out, "  %s %s\n", cyan("•"), item)
	}
}

// Header prints a section separator sized to the terminal.
func (p *Printer) Header(label string) {
	width := GetTerminalWidth()
	if width > 60 {
		width = 60
	}
	line := strings.Repeat("─", width)
	if p.Plain {
		line = strings.Repeat("-", width)
		fmt.Fprintf(p.Out, "%s\n%s\n%s\n", line, label, line)
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(p.Out, "%s\n%s\n%s\n", dim(line), label, dim(line))
}
