package globrm

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runReporter(config ReportConfig, dryRun bool) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewReporter(config, dryRun, out, errOut), out, errOut
}

func TestReporterDefaultStreamsDetailLines(t *testing.T) {
	r, out, errOut := runReporter(ReportConfig{}, false)

	r.FileResult(Result{Path: "a.txt", Outcome: OutcomeDeleted, Bytes: 7})
	r.FileResult(Result{Path: "b.txt", Outcome: OutcomeDeleted, Bytes: 7})

	assert.Contains(t, out.String(), "deleted a.txt")
	assert.Contains(t, out.String(), "deleted b.txt")
	assert.Empty(t, errOut.String())
}

func TestReporterDryRunLines(t *testing.T) {
	r, out, _ := runReporter(ReportConfig{}, true)

	r.FileResult(Result{Path: "a.txt", Outcome: OutcomeSkippedDryRun, Bytes: 7})

	assert.Contains(t, out.String(), "would delete a.txt")
}

func TestReporterFailuresGoToStderr(t *testing.T) {
	r, out, errOut := runReporter(ReportConfig{}, false)

	r.FileResult(Result{Path: "a.txt", Outcome: OutcomeFailed, Err: errors.New("permission denied")})

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "a.txt")
	assert.Contains(t, errOut.String(), "permission denied")
}

func TestReporterQuietSuppressesEverythingButErrors(t *testing.T) {
	r, out, errOut := runReporter(ReportConfig{Quiet: true, PrintSummary: true}, false)

	r.FileResult(Result{Path: "a.txt", Outcome: OutcomeDeleted})
	r.FileResult(Result{Path: "b.txt", Outcome: OutcomeFailed, Err: errors.New("busy")})
	r.Summary(Summary{Considered: 2, Deleted: 1, Failed: 1})

	// Quiet wins over print-summary.
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "b.txt")
}

func TestReporterDetailOffStillPrintsSummary(t *testing.T) {
	r, out, _ := runReporter(ReportConfig{DetailOff: true, PrintSummary: true}, false)

	r.FileResult(Result{Path: "a.txt", Outcome: OutcomeDeleted})
	r.Summary(Summary{Considered: 1, Deleted: 1, Elapsed: 12 * time.Millisecond})

	assert.NotContains(t, out.String(), "a.txt")
	assert.Contains(t, out.String(), "Total files examined:")
	assert.Contains(t, out.String(), "Files deleted:")
}

func TestReporterSummaryOnlyWhenRequested(t *testing.T) {
	r, out, _ := runReporter(ReportConfig{}, false)

	r.Summary(Summary{Considered: 3, Deleted: 3})

	assert.Empty(t, out.String())
}

func TestReporterSummaryCounts(t *testing.T) {
	r, out, _ := runReporter(ReportConfig{PrintSummary: true}, false)

	r.Summary(Summary{
		Considered: 5,
		Deleted:    3,
		Failed:     2,
		BytesFreed: 2048,
		Elapsed:    3 * time.Millisecond,
	})

	s := out.String()
	assert.Contains(t, s, fmt.Sprintf("Total files examined: %5d", 5))
	assert.Contains(t, s, fmt.Sprintf("Files deleted:        %5d", 3))
	assert.Contains(t, s, fmt.Sprintf("Files failed:         %5d", 2))
	assert.Contains(t, s, "Bytes freed:")
	assert.Contains(t, s, "2.0KB")
}

func TestReporterDryRunSummaryLabel(t *testing.T) {
	r, out, _ := runReporter(ReportConfig{PrintSummary: true}, true)

	r.Summary(Summary{Considered: 1, Skipped: 1, BytesFreed: 100})

	assert.Contains(t, out.String(), "Bytes to free:")
}

func TestReporterPatternFailure(t *testing.T) {
	r, out, errOut := runReporter(ReportConfig{Quiet: true}, false)

	r.PatternFailure(&PatternError{Pattern: "missing.txt", Reason: "no such file"})

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `pattern "missing.txt": no such file`)
}
