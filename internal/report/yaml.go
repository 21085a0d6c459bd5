package report

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sushengloong/maestro-spike/internal/document"
)

// YAMLWriter renders parsed reports as YAML.
//
// Reports are converted to yaml.Node trees rather than maps so that mapping
// keys keep their source order.
type YAMLWriter struct {
	baseWriter

	indent int
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
// The YAML emitter only supports indents from 2 to 9 and falls back to 2
// outside that range. WithColor is ignored.
func NewYAMLWriter(output io.Writer, opts ...Option) *YAMLWriter {
	o := newOptions(opts)
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
		indent:     o.indent,
	}
}

// WriteStructured writes v as a single YAML document.
func (w *YAMLWriter) WriteStructured(_ Section, v document.Value) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(w.indent)

	if err := enc.Encode(ToYAMLNode(v)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := w.output.Write(buf.Bytes())
	return err
}

// ToYAMLNode converts a document value into a yaml.Node tree.
func ToYAMLNode(v document.Value) *yaml.Node {
	switch v.Kind() {
	case document.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case document.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool())}
	case document.KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: numberTag(v.Text()), Value: v.Text()}
	case document.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Text()}
	case document.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			node.Content = append(node.Content, ToYAMLNode(item))
		}
		return node
	case document.KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Members() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				ToYAMLNode(m.Value),
			)
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// numberTag picks the YAML tag for a JSON number literal.
func numberTag(literal string) string {
	if strings.ContainsAny(literal, ".eE") {
		return "!!float"
	}
	return "!!int"
}
