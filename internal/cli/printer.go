package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/npurge/internal/npurge"
)

// printer writes one notification line per match event as the walk
// progresses. In active mode nothing is printed on discovery; the line
// appears once the match is removed (or fails to be).
type printer struct {
	out    io.Writer
	scan   bool
	dryRun bool

	found   *color.Color
	freed   *color.Color
	skipped *color.Color
	failed  *color.Color
}

func newPrinter(out io.Writer, options npurge.Options) *printer {
	p := &printer{
		out:     out,
		scan:    options.Scan,
		dryRun:  options.DryRun,
		found:   color.New(color.FgCyan),
		freed:   color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		failed:  color.New(color.FgRed),
	}

	if options.NoColor {
		for _, c := range []*color.Color{p.found, p.freed, p.skipped, p.failed} {
			c.DisableColor()
		}
	}

	return p
}

// callbacks wires the printer into the walk.
func (p *printer) callbacks() npurge.Callbacks {
	return npurge.Callbacks{
		OnMatch:       p.onMatch,
		OnDeleted:     p.onDeleted,
		OnSkipped:     p.onSkipped,
		OnDeleteError: p.onDeleteError,
	}
}

func (p *printer) onMatch(info npurge.MatchInfo) {
	switch {
	case p.scan:
		fmt.Fprintf(p.out, "%s %s (%s)\n", p.found.Sprint("found"), info.Path, size(info.Size))
	case p.dryRun:
		fmt.Fprintf(p.out, "%s %s (%s)\n", p.found.Sprint("would remove"), info.Path, size(info.Size))
	}
}

func (p *printer) onDeleted(info npurge.MatchInfo) {
	fmt.Fprintf(p.out, "%s %s %s\n", p.freed.Sprint("freed"), size(info.Size), info.Path)
}

func (p *printer) onSkipped(info npurge.MatchInfo) {
	fmt.Fprintf(p.out, "%s %s\n", p.skipped.Sprint("skipped"), info.Path)
}

func (p *printer) onDeleteError(info npurge.DeleteErrorInfo) {
	fmt.Fprintf(p.out, "%s %s: %v\n", p.failed.Sprint("failed to remove"), info.Path, info.Err)
}

func size(bytes int64) string {
	return humanize.IBytes(uint64(bytes)) //nolint:gosec // Sizes are never negative
}
