package lookup

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/preston-bernstein/nba-id-lookup/internal/report"
)

// Progress prints the human-readable line for each resolved name.
type Progress struct {
	w       io.Writer
	color   bool
	summary func(report.Summary) string
}

// NewProgress writes to w; color adds ANSI colors for terminals. A nil w discards output.
func NewProgress(w io.Writer, color bool) *Progress {
	if w == nil {
		w = io.Discard
	}
	return &Progress{w: w, color: color}
}

// Match reports a resolved name.
func (p *Progress) Match(name, id string) {
	fmt.Fprintf(p.w, "✅ %s: %s\n", name, p.paint(text.FgGreen, id))
}

// Miss reports a name the directory did not know.
func (p *Progress) Miss(name string) {
	fmt.Fprintf(p.w, "❓ %s: %s\n", name, p.paint(text.FgYellow, "No match"))
}

// WithSummary prints render's output ahead of the completion notice.
func (p *Progress) WithSummary(render func(report.Summary) string) *Progress {
	p.summary = render
	return p
}

// Done prints the optional summary, then the completion notice.
func (p *Progress) Done(outputPath string, summary report.Summary) {
	if p.summary != nil {
		if out := p.summary(summary); out != "" {
			fmt.Fprintf(p.w, "\n%s\n", out)
		}
	}
	fmt.Fprintf(p.w, "\nDone! Results written to %s\n", outputPath)
}

// Writer exposes the underlying writer for callers that append extra output.
func (p *Progress) Writer() io.Writer {
	return p.w
}

func (p *Progress) paint(c text.Color, s string) string {
	if !p.color {
		return s
	}
	return text.Colors{c}.Sprint(s)
}
