// Package dump implements the report dumper: it validates the four
// positional arguments, echoes them, pretty-prints the Brakeman and RuboCop
// JSON reports and prints the bundle-audit output verbatim.
//
// Argument, file and parse failures are returned as *Error with a Kind, and
// ExitCode maps each kind to its own process exit code. Cancellation and
// output write errors are returned unchanged and map to ExitFailure.
package dump
