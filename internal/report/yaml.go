package report

import (
	"bytes"
	"io"

	"github.com/nao1215/charschema/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the lesson document as YAML.
type YAMLWriter struct {
	baseWriter

	// indent is the number of spaces per nesting level.
	indent int
}

// NewYAMLWriter creates a YAMLWriter with two-space indentation.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
		indent:     2,
	}
}

// Write outputs the lesson in YAML format.
func (w *YAMLWriter) Write(lesson *model.Lesson) (int, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(w.indent)
	if err := enc.Encode(lesson); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
