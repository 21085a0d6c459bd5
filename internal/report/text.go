package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/sushengloong/maestro-spike/internal/document"
)

// TextWriter outputs an indented dump in the manner of Ruby's awesome_print:
//
//	{
//	    "scan_info" => {
//	        "app_path" => "/srv/app"
//	    },
//	     "warnings" => [
//	        [0] "SQL"
//	    ]
//	}
//
// Object keys are right-aligned, array elements carry their index and empty
// containers print as {} and []. Colors are off unless WithColor(true).
type TextWriter struct {
	baseWriter

	indent  int
	palette palette
}

// palette holds the colors for each kind of token.
type palette struct {
	key    *color.Color
	str    *color.Color
	number *color.Color
	truthy *color.Color
	falsy  *color.Color
	null   *color.Color
}

// newPalette returns a palette with colors forced on or off, regardless of
// the package-level color.NoColor detection.
func newPalette(enabled bool) palette {
	p := palette{
		key:    color.New(color.FgCyan),
		str:    color.New(color.FgYellow),
		number: color.New(color.FgBlue),
		truthy: color.New(color.FgGreen),
		falsy:  color.New(color.FgRed),
		null:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.key, p.str, p.number, p.truthy, p.falsy, p.null} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...Option) *TextWriter {
	o := newOptions(opts)
	return &TextWriter{
		baseWriter: newBaseWriter(output),
		indent:     o.indent,
		palette:    newPalette(o.color),
	}
}

// WriteStructured writes the dump of v followed by a newline.
func (w *TextWriter) WriteStructured(_ Section, v document.Value) error {
	var sb strings.Builder
	w.writeValue(&sb, v, 0)
	sb.WriteString("\n")

	_, err := io.WriteString(w.output, sb.String())
	return err
}

// writeValue writes v at the given nesting level. The caller has already
// written the indentation of the current line.
func (w *TextWriter) writeValue(sb *strings.Builder, v document.Value, level int) {
	switch v.Kind() {
	case document.KindNull:
		sb.WriteString(w.palette.null.Sprint("null"))
	case document.KindBool:
		if v.Bool() {
			sb.WriteString(w.palette.truthy.Sprint("true"))
		} else {
			sb.WriteString(w.palette.falsy.Sprint("false"))
		}
	case document.KindNumber:
		sb.WriteString(w.palette.number.Sprint(v.Text()))
	case document.KindString:
		sb.WriteString(w.palette.str.Sprint(strconv.Quote(v.Text())))
	case document.KindArray:
		w.writeArray(sb, v, level)
	case document.KindObject:
		w.writeObject(sb, v, level)
	}
}

// writeArray writes "[i] value" lines with indices padded to equal width.
func (w *TextWriter) writeArray(sb *strings.Builder, v document.Value, level int) {
	items := v.Items()
	if len(items) == 0 {
		sb.WriteString("[]")
		return
	}

	width := len(strconv.Itoa(len(items) - 1))
	inner := w.pad(level + 1)

	sb.WriteString("[\n")
	for i, item := range items {
		sb.WriteString(inner)
		fmt.Fprintf(sb, "[%*d] ", width, i)
		w.writeValue(sb, item, level+1)
		if i < len(items)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(w.pad(level))
	sb.WriteString("]")
}

// writeObject writes `"key" => value` lines with keys right-aligned.
func (w *TextWriter) writeObject(sb *strings.Builder, v document.Value, level int) {
	members := v.Members()
	if len(members) == 0 {
		sb.WriteString("{}")
		return
	}

	keys := make([]string, len(members))
	width := 0
	for i, m := range members {
		keys[i] = strconv.Quote(m.Key)
		if kw := runewidth.StringWidth(keys[i]); kw > width {
			width = kw
		}
	}

	inner := w.pad(level + 1)

	sb.WriteString("{\n")
	for i, m := range members {
		sb.WriteString(inner)
		sb.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(keys[i])))
		sb.WriteString(w.palette.key.Sprint(keys[i]))
		sb.WriteString(" => ")
		w.writeValue(sb, m.Value, level+1)
		if i < len(members)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(w.pad(level))
	sb.WriteString("}")
}

// pad returns the indentation for the given nesting level.
func (w *TextWriter) pad(level int) string {
	return strings.Repeat(" ", level*w.indent)
}
