package cmd

import (
	"fmt"
	"os"

	"globrm/pkg/globrm"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Exit codes. Individual deletion failures are reported per file and do not
// fail the process; only a run that resolves nothing at all, or a malformed
// invocation, exits non-zero.
const (
	exitOK        = 0
	exitNoMatches = 1
	exitUsage     = 2
)

var RootCmd = &cobra.Command{
	Use:   "globrm [flags] PATTERN...",
	Short: "Deletes regular files matching glob patterns",
	Long: `Deletes regular files matching the given glob patterns.

Patterns support '*' (any run of characters within one path component),
'?' (one character), '[...]' character classes and '**' (any number of
directories). An argument without metacharacters is a literal path.
Matching is case-sensitive on every platform, including filesystems that
are usually case-insensitive.

Directories are descended into but never deleted. A pattern that matches
nothing is not an error; the run only fails (exit code 1) when the whole
argument list resolves to zero files. Exit code 2 means a malformed
invocation. Deletion failures are reported per file and leave the exit
code at 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := cmd.Flags().GetBool("version")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		if version {
			fmt.Printf("Version %s\n", globrm.Version)
			return
		}

		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		detailOff, err := cmd.Flags().GetBool("detail-off")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		printSummary, err := cmd.Flags().GetBool("print-summary")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		stopOnError, err := cmd.Flags().GetBool("stop-on-error")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		verbosity, err := cmd.Flags().GetCount("debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not parse options: %s\n", err)
			os.Exit(exitUsage)
		}

		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "globrm: no patterns given")
			cmd.Usage()
			os.Exit(exitUsage)
		}

		logger, err := newLogger(quiet, verbosity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not set up logging: %s\n", err)
			os.Exit(exitUsage)
		}
		defer logger.Sync()

		reporter := globrm.NewReporter(globrm.ReportConfig{
			Quiet:        quiet,
			DetailOff:    detailOff,
			PrintSummary: printSummary,
		}, dryRun, os.Stdout, os.Stderr)

		resolver := globrm.NewResolver("", logger)
		files, patternErrs := resolver.Resolve(args)

		for _, perr := range patternErrs {
			reporter.PatternFailure(perr)
		}

		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "globrm: no files matched any pattern")
			os.Exit(exitNoMatches)
		}

		if dryRun {
			logger.Info("dry run, nothing will be deleted")
		}

		executor := globrm.NewExecutor(globrm.OSDeleter{}, dryRun, logger)
		executor.StopOnError = stopOnError

		// With per-file lines suppressed a terminal gets a progress bar
		// instead, so long runs are not silent.
		var bar *progressbar.ProgressBar
		if detailOff && !quiet && term.IsTerminal(int(os.Stdout.Fd())) {
			bar = progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(os.Stdout),
				progressbar.OptionSetDescription("Deleting"),
				progressbar.OptionThrottle(0),
				progressbar.OptionShowCount(),
				progressbar.OptionFullWidth(),
				progressbar.OptionSetRenderBlankState(true))
		}

		done := 0
		executor.OnResult = func(res globrm.Result) {
			done++
			if bar != nil && res.Outcome == globrm.OutcomeFailed {
				bar.Clear()
			}
			reporter.FileResult(res)
			if bar != nil {
				bar.Set(done)
			}
		}

		_, summary := executor.Run(files)

		if bar != nil {
			bar.Clear()
		}

		reporter.Summary(summary)
	},
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(exitUsage)
	}
}

// newLogger maps the quiet flag and the repeated debug flag onto zap the
// same way the verbosity flags are documented: quiet shows errors only, no
// flags is the normal warning level, -d enables debug and -dd additionally
// switches to the development encoder.
func newLogger(quiet bool, verbosity int) (*zap.Logger, error) {
	var cfg zap.Config
	if verbosity > 1 {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	switch {
	case quiet:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case verbosity == 0:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

func init() {
	RootCmd.Flags().CountP("debug", "d", "Increases log verbosity. Repeatable.")
	RootCmd.Flags().Bool("detail-off", false, "Suppresses the per-file output lines.")
	RootCmd.Flags().BoolP("dry-run", "n", false, "Shows what would be deleted, but does not delete anything.")
	RootCmd.Flags().BoolP("print-summary", "s", false, "Prints a summary at the end of the run.")
	RootCmd.Flags().BoolP("quiet", "q", false, "Suppresses all output except errors.")
	RootCmd.Flags().Bool("stop-on-error", false, "Stops at the first file that fails to delete.")
	RootCmd.Flags().BoolP("version", "v", false, "Prints the version.")
}
