package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"prisoners/internal/riddle"
)

// Printer renders run results with locale-aware digit grouping.
type Printer struct {
	p         *message.Printer
	precision int
}

func NewPrinter(locale string, precision int) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Printer{p: message.NewPrinter(tag), precision: precision}, nil
}

// Percent formats a proportion in [0,1] as a percentage.
func (pr *Printer) Percent(proportion float64) string {
	return pr.p.Sprintf(fmt.Sprintf("%%.%df%%%%", pr.precision), proportion*100)
}

// Result writes the final line of a run.
func (pr *Printer) Result(w io.Writer, stats riddle.GameStatistics) {
	pr.p.Fprintf(w, "Won %s of the time (%d of %d games)\n",
		pr.Percent(stats.ProportionWins()), stats.NumWins(), stats.NumGames())
}

// Failure writes the report for a run that aborted on an engine fault. The
// statistic is still printed, as zero.
func (pr *Printer) Failure(w io.Writer, err error) {
	pr.p.Fprintf(w, "%v\n", err)
	pr.p.Fprintf(w, "Won %s of the time\n", pr.Percent(0))
}

// ProgressLine renders one progress update.
func (pr *Printer) ProgressLine(progress float64) string {
	return pr.p.Sprintf("Progress: %.0f%%", progress*100)
}
