package globrm

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// Outcome is the per-file result of a deletion attempt.
type Outcome int

const (
	OutcomeDeleted Outcome = iota
	OutcomeSkippedDryRun
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeleted:
		return "deleted"
	case OutcomeSkippedDryRun:
		return "skipped (dry run)"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Result records what happened to one resolved file. Instead of stopping on
// the first error, results are collected and tallied at the end.
type Result struct {
	Path    string
	Outcome Outcome
	Bytes   uint64
	Err     error
}

// Summary aggregates the results of a run. Considered always equals
// Deleted + Skipped + Failed. BytesFreed counts the size of deleted files;
// on a dry run it counts the files that would have been deleted.
type Summary struct {
	Considered int
	Deleted    int
	Skipped    int
	Failed     int
	BytesFreed uint64
	Elapsed    time.Duration
}

// Executor deletes the resolved files one by one, in resolution order.
type Executor struct {
	Deleter Deleter

	// DryRun reports every file as skipped and never calls the Deleter.
	DryRun bool

	// StopOnError stops the run after the first failed deletion. Off by
	// default: a failure on one file does not affect the others.
	StopOnError bool

	// OnResult, when set, is called with each result as it is produced.
	OnResult func(Result)

	Logger *zap.Logger
}

func NewExecutor(deleter Deleter, dryRun bool, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{Deleter: deleter, DryRun: dryRun, Logger: logger}
}

// Run processes every file and returns the results in input order plus the
// final tally. Files not reached because of StopOnError are not counted.
func (e *Executor) Run(files []string) ([]Result, Summary) {
	start := time.Now()
	results := make([]Result, 0, len(files))
	var sum Summary

	for _, path := range files {
		res := e.processOne(path)
		results = append(results, res)

		sum.Considered++
		switch res.Outcome {
		case OutcomeDeleted:
			sum.Deleted++
			sum.BytesFreed += res.Bytes
		case OutcomeSkippedDryRun:
			sum.Skipped++
			sum.BytesFreed += res.Bytes
		case OutcomeFailed:
			sum.Failed++
		}

		if e.OnResult != nil {
			e.OnResult(res)
		}

		if res.Outcome == OutcomeFailed && e.StopOnError {
			e.Logger.Warn("stopping after failed deletion", zap.String("path", path))
			break
		}
	}

	sum.Elapsed = time.Since(start)
	return results, sum
}

// processOne attempts (or, on a dry run, pretends to attempt) one deletion.
// The size is captured before removal so the freed bytes can be tallied.
// A file that vanished between resolution and deletion shows up here as a
// stat or remove error and becomes a Failed outcome.
func (e *Executor) processOne(path string) Result {
	var size uint64
	if info, err := os.Lstat(path); err == nil {
		size = uint64(info.Size())
	}

	if e.DryRun {
		e.Logger.Debug("dry run, not deleting", zap.String("path", path))
		return Result{Path: path, Outcome: OutcomeSkippedDryRun, Bytes: size}
	}

	if err := e.Deleter.Remove(path); err != nil {
		e.Logger.Warn("unable to remove file", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	e.Logger.Debug("removed file", zap.String("path", path), zap.Uint64("bytes", size))
	return Result{Path: path, Outcome: OutcomeDeleted, Bytes: size}
}
