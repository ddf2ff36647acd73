package report

import (
	"io"

	"github.com/nao1215/charschema/internal/model"
)

// Writer renders a lesson to its configured destination.
type Writer interface {
	// Write outputs the lesson.
	// Returns the number of bytes written and any error encountered.
	Write(lesson *model.Lesson) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
