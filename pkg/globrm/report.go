package globrm

import (
	"fmt"
	"io"
	"time"

	"github.com/inhies/go-bytesize"
)

// Summary elapsed times are rounded to keep the block readable.
const timeRounding = time.Millisecond

// ReportConfig holds the three independent output switches. Quiet wins over
// the other two: a quiet run emits errors and nothing else.
type ReportConfig struct {
	Quiet        bool // errors only
	DetailOff    bool // no per-file lines
	PrintSummary bool // final tally block
}

// Reporter turns results into output as they are produced. Per-file and
// summary lines go to Out (stdout), pattern and deletion errors go to
// ErrOut (stderr).
type Reporter struct {
	Config ReportConfig
	DryRun bool
	Out    io.Writer
	ErrOut io.Writer
}

func NewReporter(config ReportConfig, dryRun bool, out, errOut io.Writer) *Reporter {
	return &Reporter{Config: config, DryRun: dryRun, Out: out, ErrOut: errOut}
}

// PatternFailure reports an argument that could not be resolved. Always
// emitted, even when quiet.
func (r *Reporter) PatternFailure(perr *PatternError) {
	fmt.Fprintf(r.ErrOut, "globrm: %s\n", perr)
}

// FileResult emits one per-file line. Failures always go to stderr;
// everything else is suppressed by quiet or detail-off.
func (r *Reporter) FileResult(res Result) {
	if res.Outcome == OutcomeFailed {
		fmt.Fprintf(r.ErrOut, "globrm: failed: %s: %v\n", res.Path, res.Err)
		return
	}

	if r.Config.Quiet || r.Config.DetailOff {
		return
	}

	if res.Outcome == OutcomeSkippedDryRun {
		fmt.Fprintf(r.Out, "would delete %s (%s)\n", res.Path, bytesize.New(float64(res.Bytes)))
		return
	}

	fmt.Fprintf(r.Out, "deleted %s (%s)\n", res.Path, bytesize.New(float64(res.Bytes)))
}

// Summary emits the final tally block when print-summary is set. Quiet
// suppresses it regardless.
func (r *Reporter) Summary(sum Summary) {
	if r.Config.Quiet || !r.Config.PrintSummary {
		return
	}

	freedLabel := "Bytes freed:         "
	if r.DryRun {
		freedLabel = "Bytes to free:       "
	}

	fmt.Fprintf(r.Out, "Total files examined: %5d\n", sum.Considered)
	fmt.Fprintf(r.Out, "Files deleted:        %5d\n", sum.Deleted)
	fmt.Fprintf(r.Out, "Files skipped:        %5d\n", sum.Skipped)
	fmt.Fprintf(r.Out, "Files failed:         %5d\n", sum.Failed)
	fmt.Fprintf(r.Out, "%s %s\n", freedLabel, bytesize.New(float64(sum.BytesFreed)))
	fmt.Fprintf(r.Out, "Elapsed:              %s\n", sum.Elapsed.Round(timeRounding))
}
