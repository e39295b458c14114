// Package ui styles the CLI's result output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D26A"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB800"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3838"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	urlStyle     = lipgloss.NewStyle().Underline(true)
)

// Printer writes styled status lines. Colors degrade automatically on
// non-terminal writers; NoColor forces plain output.
type Printer struct {
	w       io.Writer
	noColor bool
}

// NewPrinter builds a printer for w. Pass noColor to strip styling.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if noColor || termenv.EnvColorProfile() == termenv.Ascii {
		return &Printer{w: w, noColor: true}
	}
	return &Printer{w: w}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if p.noColor {
		return s
	}
	return style.Render(s)
}

// Success prints a completed-report line with both artifact URLs.
func (p *Printer) Success(entity, primaryURL, derivedURL string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(successStyle, "✓"), entity)
	p.URL("primary", primaryURL)
	p.URL("derived", derivedURL)
}

// URL prints one labeled artifact URL; missing URLs render as a warning.
func (p *Printer) URL(label, url string) {
	if url == "" {
		fmt.Fprintf(p.w, "  %s %s\n", p.render(labelStyle, label+":"), p.render(warnStyle, "(upload failed)"))
		return
	}
	fmt.Fprintf(p.w, "  %s %s\n", p.render(labelStyle, label+":"), p.render(urlStyle, url))
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(warnStyle, "!"), msg)
}

// Error prints a generation failure.
func (p *Printer) Error(entity string, err error) {
	fmt.Fprintf(p.w, "%s %s: %v\n", p.render(errorStyle, "✗"), entity, err)
}
