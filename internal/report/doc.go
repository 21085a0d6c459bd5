// Package report renders a dump to an output stream.
//
// This package contains writers for different output formats:
//   - TextWriter: indented, optionally colorized dump for terminal display
//   - JSONWriter: re-indented JSON
//   - YAMLWriter: the same documents as YAML
//   - MarkdownWriter: a Markdown document with fenced code blocks
//
// Parsed reports live in the document package; this package only decides
// how they look. Every Writer call writes immediately, so whatever was
// printed before a later failure stays on the output.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably. New picks one by config.Format.
package report
