package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
)

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	barEmptyStyle  = lipgloss.NewStyle().Foreground(colorSecondary)
	barLabelStyle  = lipgloss.NewStyle().Foreground(colorSecondary)
)

// progressBarWidth is the character width of the bar itself, excluding the
// counter label.
const progressBarWidth = 30

// ProgressBar renders an in-place progress line to a terminal. It rewrites
// the same line with carriage returns, so it must only be used when the
// output stream is a terminal (see DetectMode).
//
// Not safe for concurrent use; the scan drivers invoke progress callbacks
// from a single goroutine.
type ProgressBar struct {
	out  io.Writer
	unit string
	open bool
}

// NewProgressBar creates a ProgressBar writing to out.
func NewProgressBar(out io.Writer) *ProgressBar {
	return &ProgressBar{out: out}
}

// Update redraws the progress line. Total below one is treated as unknown
// and renders a plain counter instead of a bar. Totals are estimates for
// data scans, so current is clamped rather than allowed to overflow the bar.
func (p *ProgressBar) Update(current, total int, unit string) {
	p.unit = unit
	p.open = true

	if total < 1 {
		fmt.Fprintf(p.out, "\r%s", barLabelStyle.Render(fmt.Sprintf("%d %s", current, unit)))
		return
	}

	if current > total {
		current = total
	}
	filled := current * progressBarWidth / total

	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", progressBarWidth-filled))
	label := barLabelStyle.Render(fmt.Sprintf(" %d/%d %s", current, total, unit))

	fmt.Fprintf(p.out, "\r%s%s", bar, label)
}

// Done terminates the progress line so subsequent log output starts on a
// fresh line. Safe to call when nothing was rendered.
func (p *ProgressBar) Done() {
	if !p.open {
		return
	}
	fmt.Fprintln(p.out)
	p.open = false
}
