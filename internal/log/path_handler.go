package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// HomePrefix replaces the home directory in rewritten paths.
const HomePrefix = "~"

// PathHandler wraps an slog.Handler and abbreviates string attribute values
// that are paths inside the home directory.
//
// It is a handler wrapper rather than a custom logger so that it composes
// with any underlying handler (text or JSON) and keeps the slog API.
type PathHandler struct {
	handler slog.Handler

	// home is the cleaned home directory. Empty disables rewriting.
	home string
}

// NewPathHandler creates a PathHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used. An empty home
// leaves every value untouched.
func NewPathHandler(handler slog.Handler, home string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if home != "" {
		home = filepath.Clean(home)
	}
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursing into groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, h.Abbreviate(a.Value.String()))
	}

	return a
}

// Abbreviate returns path with a leading home directory replaced by "~".
// Values that are not absolute paths inside the home directory are
// returned unchanged.
func (h *PathHandler) Abbreviate(path string) string {
	if h.home == "" || !filepath.IsAbs(path) {
		return path
	}

	cleaned := filepath.Clean(path)
	if cleaned == h.home {
		return HomePrefix
	}

	prefix := h.home + string(filepath.Separator)
	if h.home == string(filepath.Separator) {
		prefix = h.home
	}
	if rest, ok := strings.CutPrefix(cleaned, prefix); ok {
		return HomePrefix + string(filepath.Separator) + rest
	}
	return path
}

// NewLogger creates a text slog.Logger writing to w with home-directory
// paths abbreviated.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// A missing home directory only disables abbreviation.
	home, _ := os.UserHomeDir() //nolint:errcheck

	return slog.New(NewPathHandler(slog.NewTextHandler(w, opts), home))
}
