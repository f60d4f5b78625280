// Package output prints styled progress, warning and error messages for the
// CLI. Styling uses lipgloss; when the destination is not a terminal the
// renderer falls back to plain text, so tests and pipes see the raw message.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to an io.Writer.
type Printer struct {
	w       io.Writer
	verbose bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style
}

// New creates a Printer for w. Colors are chosen for w, not for stdout.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		successStyle: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("yellow")),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("cyan")),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetVerbose enables Debug output.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Line prints msg unstyled.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Success prints a completed-operation message in green.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, render(p.successStyle, msg))
}

// Error prints a failure message in red.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, render(p.errorStyle, msg))
}

// Warn prints a non-fatal warning in yellow.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, render(p.warnStyle, msg))
}

// Info prints an informational message in cyan.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, render(p.infoStyle, msg))
}

// Step prints an indented next-step hint in gray.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.w, "\t"+render(p.stepStyle, msg))
}

// Debug prints msg only in verbose mode.
func (p *Printer) Debug(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.w, render(p.stepStyle, "debug: "+fmt.Sprintf(format, args...)))
}

// render styles each line on its own; lipgloss pads multi-line blocks to a
// common width.
func render(style lipgloss.Style, msg string) string {
	lines := strings.Split(msg, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
