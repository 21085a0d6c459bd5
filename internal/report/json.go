package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/sushengloong/maestro-spike/internal/document"
)

// JSONWriter re-indents parsed reports as JSON.
// Member order and number literals are kept exactly as in the source.
type JSONWriter struct {
	baseWriter

	// indentString is the indentation for one nesting level.
	indentString string
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// WithColor is ignored.
func NewJSONWriter(output io.Writer, opts ...Option) *JSONWriter {
	o := newOptions(opts)
	return &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indentString: strings.Repeat(" ", o.indent),
	}
}

// WriteStructured writes v as indented JSON followed by a newline.
func (w *JSONWriter) WriteStructured(_ Section, v document.Value) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, v.AppendJSON(nil), "", w.indentString); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err := w.output.Write(buf.Bytes())
	return err
}
