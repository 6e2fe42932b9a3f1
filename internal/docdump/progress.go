package docdump

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var counterStyle = lipgloss.NewStyle().Faint(true)

// Progress renders an inline progress bar with a done/total counter. It is
// only ever advanced from the Runner's collection loop, so it needs no
// locking.
type Progress struct {
	w     io.Writer
	bar   progress.Model
	total int
	done  int
}

// NewProgress returns a Progress for total units of work, rendered to w.
func NewProgress(w io.Writer, total int) *Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	return &Progress{w: w, bar: bar, total: total}
}

// Advance records one more completed unit and redraws the bar in place.
func (p *Progress) Advance() {
	p.done++
	frac := 1.0
	if p.total > 0 {
		frac = float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.w, "\r%s %s", p.bar.ViewAs(frac),
		counterStyle.Render(fmt.Sprintf("%d/%d modules", p.done, p.total)))
	if p.done >= p.total {
		fmt.Fprintln(p.w)
	}
}

// Done reports how many units have completed so far.
func (p *Progress) Done() int {
	return p.done
}
