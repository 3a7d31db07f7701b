/*
 * Deletes regular files matching glob patterns, optionally recursively:
 *
 * 	globrm '*.bak'
 * 	globrm 'build/**' 'logs/**' '*.tmp'
 * 	globrm -n 'sub/[ab]?.txt'
 *
 * Usage:
 *   globrm [flags] PATTERN...
 *
 * Flags:
 *   -d, --debug count     Increases log verbosity. Repeatable.
 *       --detail-off      Suppresses the per-file output lines.
 *   -n, --dry-run         Shows what would be deleted, but does not delete anything.
 *   -h, --help            help for globrm
 *   -s, --print-summary   Prints a summary at the end of the run.
 *   -q, --quiet           Suppresses all output except errors.
 *       --stop-on-error   Stops at the first file that fails to delete.
 *   -v, --version         Prints the version.
 */
package main

import "globrm/cmd"

func main() {
	cmd.Execute()
}
