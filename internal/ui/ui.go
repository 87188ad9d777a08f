// Package ui implements the line-based terminal output of the program: the
// job banner and a single progress line that is overwritten in place.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth = 40
)

// Printer writes the banner and the progress line to an [io.Writer]. Styling
// is only applied when the writer is a terminal.
type Printer struct {
	w          io.Writer
	titleStyle lipgloss.Style
	bar        *progress.Model
	stats      *TransferStats
}

// NewPrinter returns a pointer to a new [Printer]. With withBar set, a
// progress bar is rendered in front of the percentage.
func NewPrinter(w io.Writer, withBar bool) *Printer {
	renderer := lipgloss.NewRenderer(w)

	p := &Printer{
		w:          w,
		titleStyle: renderer.NewStyle().Bold(true),
		stats:      &TransferStats{},
	}

	if withBar {
		bar := progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		p.bar = &bar
	}

	return p
}

// Source prints the program title and the source line. It is printed ahead
// of [Printer.Target], so that a long running digest follows visible output.
func (p *Printer) Source(version string, source string) {
	fmt.Fprintln(p.w, p.titleStyle.Render("Fast Image Writer v"+version))
	fmt.Fprintf(p.w, "+ Source file  : %s\n", source)
}

// Target prints the remaining banner lines and the progress header. The
// digest line is omitted when digest is empty.
func (p *Printer) Target(digest string, target string) {
	if digest != "" {
		fmt.Fprintf(p.w, "+ Source digest: %s\n", digest)
	}
	fmt.Fprintf(p.w, "+ Target device: %s\n\n", target)
	fmt.Fprintln(p.w, "** Progress **")
}

// Start resets the transfer statistics for a transfer of total bytes.
func (p *Printer) Start(total uint64) {
	p.stats.Start(total)
}

// Update overwrites the progress line with the current state.
func (p *Printer) Update(written uint64, total uint64) {
	p.stats.Update(written)

	pct := Percentage(written, total)

	if p.bar != nil {
		fmt.Fprintf(p.w, "\r%s %.2f%% (%d/%d bytes)", p.bar.ViewAs(pct/100), pct, written, total) //nolint:mnd

		return
	}

	fmt.Fprintf(p.w, "\r%.2f%% (%d/%d bytes)", pct, written, total)
}

// Finish terminates the progress line and returns the final statistics.
func (p *Printer) Finish() Summary {
	fmt.Fprintln(p.w)

	return p.stats.End()
}

// Percentage returns written as a percentage of total. A total of zero counts
// as complete, so it never divides by zero.
func Percentage(written uint64, total uint64) float64 {
	if total == 0 {
		return 100 //nolint:mnd
	}

	return (float64(written) * 100.0) / float64(total) //nolint:mnd
}
