package report

import (
	"fmt"
	"io"

	"github.com/sushengloong/maestro-spike/internal/config"
	"github.com/sushengloong/maestro-spike/internal/document"
)

// Field is a labeled argument value echoed before the reports.
type Field struct {
	Label string
	Value string
}

// Section identifies one report in the output.
type Section struct {
	// Label is the human-readable name, e.g. "Brakeman JSON".
	Label string

	// Path is the file the report was read from.
	Path string
}

// Writer defines the interface for dump output.
// Implementations write each part as soon as it is handed over.
type Writer interface {
	// WriteArguments echoes the invocation arguments.
	WriteArguments(fields []Field) error

	// WriteStructured pretty-prints a parsed report.
	WriteStructured(section Section, v document.Value) error

	// WriteRaw prints a report without interpreting it.
	WriteRaw(section Section, data []byte) error
}

// options holds settings shared by all writers.
type options struct {
	indent int
	color  bool
}

// Option configures a writer created by New or a New*Writer constructor.
type Option func(*options)

// WithIndent sets the number of spaces per nesting level.
// Values below 1 are ignored.
func WithIndent(spaces int) Option {
	return func(o *options) {
		if spaces > 0 {
			o.indent = spaces
		}
	}
}

// WithColor enables ANSI colors where the format supports them.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) options {
	o := options{indent: config.DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates the Writer for the given format.
func New(format config.Format, output io.Writer, opts ...Option) (Writer, error) {
	switch format {
	case config.FormatText:
		return NewTextWriter(output, opts...), nil
	case config.FormatJSON:
		return NewJSONWriter(output, opts...), nil
	case config.FormatYAML:
		return NewYAMLWriter(output, opts...), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// WriteArguments prints one "Label: value" line per field.
func (b baseWriter) WriteArguments(fields []Field) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(b.output, "%s: %s\n", f.Label, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteRaw copies data to the output unmodified.
func (b baseWriter) WriteRaw(_ Section, data []byte) error {
	_, err := b.output.Write(data)
	return err
}
