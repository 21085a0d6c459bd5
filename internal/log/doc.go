// Package log builds the slog loggers used by persist.
//
// Logs go to stderr so they never mix with the report dump on stdout.
// The default level is Warn; --verbose lowers it to Debug.
//
// Report paths are logged often, and absolute paths usually start with the
// user's home directory. PathHandler rewrites such values to the "~/..."
// form so that debug output pasted into an issue does not carry the local
// user name.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("reading report", "path", "/home/alice/app/brakeman.json")
//	// path=~/app/brakeman.json
package log
