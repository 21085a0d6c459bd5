package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/sushengloong/maestro-spike/internal/document"
)

// Fence languages for code blocks.
const (
	syntaxJSON markdown.SyntaxHighlight = "json"
	syntaxText markdown.SyntaxHighlight = "text"
)

// markdownIndent is the JSON indent inside code blocks.
const markdownIndent = "  "

// MarkdownWriter outputs the dump as a Markdown document, suitable for
// pasting into a pull request or CI summary.
//
// Each call builds and flushes its own markdown.Markdown so that output is
// written section by section, like the other writers.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteArguments writes the document title and an arguments table.
func (w *MarkdownWriter) WriteArguments(fields []Field) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Report Dump")
	md.PlainText("")

	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Label, tableCell(codeSpan(f.Value))}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Argument", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	return md.Build()
}

// WriteStructured writes a section holding v as an indented JSON block.
func (w *MarkdownWriter) WriteStructured(section Section, v document.Value) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, v.AppendJSON(nil), "", markdownIndent); err != nil {
		return err
	}

	md := markdown.NewMarkdown(w.output)
	w.writeSectionHeader(md, section)
	md.CodeBlocks(syntaxJSON, buf.String())
	md.PlainText("")

	return md.Build()
}

// WriteRaw writes a section holding data in a plain text block.
// The bytes are placed in the block unmodified.
func (w *MarkdownWriter) WriteRaw(section Section, data []byte) error {
	md := markdown.NewMarkdown(w.output)
	w.writeSectionHeader(md, section)
	md.CodeBlocks(syntaxText, string(data))
	md.PlainText("")

	return md.Build()
}

// writeSectionHeader writes the heading and source path of a section.
func (w *MarkdownWriter) writeSectionHeader(md *markdown.Markdown, section Section) {
	md.H2(section.Label)
	md.PlainText("")
	md.PlainText("Source: " + codeSpan(section.Path))
	md.PlainText("")
}

// codeSpan wraps s in an inline code span. The fence is one backtick longer
// than the longest backtick run in s, and padded when s starts or ends with
// a backtick.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

// tableCell escapes the column separator so that s stays in one cell.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
