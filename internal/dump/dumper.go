package dump

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/sushengloong/maestro-spike/internal/document"
	"github.com/sushengloong/maestro-spike/internal/report"
)

// FileReader reads whole files by path.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSReader reads files from the local file system.
type OSReader struct{}

// ReadFile implements FileReader with os.ReadFile.
func (OSReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // Reading user-provided report paths is the purpose of the tool
}

// Dumper prints a set of reports through a report.Writer.
type Dumper struct {
	writer report.Writer
	reader FileReader
	logger *slog.Logger
}

// Option configures a Dumper.
type Option func(*Dumper)

// WithFileReader sets the reader used for report files.
func WithFileReader(r FileReader) Option {
	return func(d *Dumper) {
		d.reader = r
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dumper) {
		d.logger = logger
	}
}

// New creates a Dumper writing to w.
// By default it reads from the local file system and logs via slog.Default.
func New(w report.Writer, opts ...Option) *Dumper {
	d := &Dumper{
		writer: w,
		reader: OSReader{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run validates args and dumps the reports in fixed order: the argument
// echo, the Brakeman report, the RuboCop report, then the bundle-audit
// output.
//
// The steps run strictly one after another and the first failure aborts
// the rest, so a missing Brakeman report means the other files are never
// opened. Output written before a failure is not retracted. The context is
// checked before each file is read.
func (d *Dumper) Run(ctx context.Context, args Arguments) error {
	if err := args.Validate(); err != nil {
		return err
	}

	d.logger.Debug("starting dump",
		"localDirname", args.LocalDirname,
		"brakemanJSON", args.BrakemanJSON,
		"rubocopJSON", args.RubocopJSON,
		"bundleAuditOutput", args.BundleAuditOutput,
	)

	if err := d.writer.WriteArguments(args.Fields()); err != nil {
		return err
	}

	structured := []report.Section{
		{Label: LabelBrakemanJSON, Path: args.BrakemanJSON},
		{Label: LabelRubocopJSON, Path: args.RubocopJSON},
	}
	for _, section := range structured {
		if err := d.dumpStructured(ctx, section); err != nil {
			return err
		}
	}

	return d.dumpRaw(ctx, report.Section{Label: LabelBundleAuditOutput, Path: args.BundleAuditOutput})
}

// dumpStructured reads, parses and prints one JSON report.
func (d *Dumper) dumpStructured(ctx context.Context, section report.Section) error {
	data, err := d.read(ctx, section.Path)
	if err != nil {
		return err
	}

	v, err := document.Parse(data)
	if err != nil {
		return &Error{Kind: KindParse, Path: section.Path, Err: err}
	}

	d.logger.Debug("report parsed",
		"path", section.Path,
		"kind", v.Kind().String(),
		"entries", v.Len(),
	)

	return d.writer.WriteStructured(section, v)
}

// dumpRaw reads and prints one report without parsing it.
func (d *Dumper) dumpRaw(ctx context.Context, section report.Section) error {
	data, err := d.read(ctx, section.Path)
	if err != nil {
		return err
	}
	return d.writer.WriteRaw(section, data)
}

// read loads a report file, wrapping failures as KindFileRead.
func (d *Dumper) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := d.reader.ReadFile(path)
	if err != nil {
		// The path is already part of our message.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, &Error{Kind: KindFileRead, Path: path, Err: err}
	}

	d.logger.Debug("report read",
		"path", path,
		"size", humanize.Bytes(uint64(len(data))),
	)

	return data, nil
}
