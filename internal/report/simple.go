package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nao1215/charschema/internal/model"
)

// ruleWidth is the width of the "=" rules around the title and summary.
const ruleWidth = 60

// chartBarWidth is the width of the longest bar in a text chart.
const chartBarWidth = 30

// SimpleWriter outputs the lesson as plain text for a terminal.
// Tables use "|" separated columns sized to their widest cell.
type SimpleWriter struct {
	baseWriter

	// charts controls whether chart blocks are drawn as text bars.
	charts bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithCharts enables or disables text bar charts.
func WithCharts(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.charts = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		charts:     true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the lesson in plain text.
func (w *SimpleWriter) Write(lesson *model.Lesson) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, lesson)
	for i := range lesson.Sections {
		w.writeSection(&sb, &lesson.Sections[i])
	}
	w.writeSummary(&sb, lesson)

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the title between "=" rules.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, lesson *model.Lesson) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(lesson.Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// writeSection writes one example with all of its blocks.
func (w *SimpleWriter) writeSection(sb *strings.Builder, section *model.Section) {
	fmt.Fprintf(sb, "\n--- %s ---\n", section.Heading())

	for _, block := range section.Blocks {
		if block.Kind == model.BlockChart && !w.charts {
			continue
		}

		sb.WriteString("\n")
		if block.Heading != "" {
			sb.WriteString(block.Heading)
			sb.WriteString("\n")
		}

		switch block.Kind {
		case model.BlockParagraph:
			for _, line := range block.Lines {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		case model.BlockBullets:
			for _, item := range block.Lines {
				fmt.Fprintf(sb, "  - %s\n", item)
			}
		case model.BlockTable:
			writeTextTable(sb, block.Table)
		case model.BlockFields:
			writeTextFields(sb, block.Fields)
		case model.BlockChart:
			writeTextChart(sb, block.Chart)
		}
	}
}

// writeSummary writes the key concepts between "=" rules.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, lesson *model.Lesson) {
	if len(lesson.KeyConcepts) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Key Concepts:\n")
	for _, concept := range lesson.KeyConcepts {
		fmt.Fprintf(sb, "- %s\n", concept)
	}
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// writeTextTable writes a header, a dashed separator and the rows.
func writeTextTable(sb *strings.Builder, table *model.Table) {
	if table == nil {
		return
	}

	widths := make([]int, len(table.Header))
	for i, h := range table.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	writeTextRow(sb, table.Header, widths)

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	sb.WriteString(strings.Join(dashes, "-|-"))
	sb.WriteString("\n")

	for _, row := range table.Rows {
		writeTextRow(sb, row, widths)
	}
}

func writeTextRow(sb *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = runewidth.FillRight(cell, width)
	}
	sb.WriteString(strings.Join(padded, " | "))
	sb.WriteString("\n")
}

// writeTextFields aligns values after the longest label.
func writeTextFields(sb *strings.Builder, fields []model.Field) {
	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f.Label)+1)
	}
	for _, f := range fields {
		fmt.Fprintf(sb, "%s %s\n", runewidth.FillRight(f.Label+":", width), f.Value)
	}
}

// writeTextChart draws one "#" bar per non-empty slice, scaled to chartBarWidth.
func writeTextChart(sb *strings.Builder, chart *model.Chart) {
	if chart == nil {
		return
	}

	slices := chart.NonZero()
	if len(slices) == 0 {
		return
	}

	fmt.Fprintf(sb, "%s:\n", chart.Title)

	labelWidth, maxValue := 0, 0
	for _, s := range slices {
		labelWidth = max(labelWidth, runewidth.StringWidth(s.Label))
		maxValue = max(maxValue, s.Value)
	}
	for _, s := range slices {
		bar := max(1, s.Value*chartBarWidth/maxValue)
		fmt.Fprintf(sb, "  %s %3d %s\n",
			runewidth.FillRight(s.Label, labelWidth), s.Value, strings.Repeat("#", bar))
	}
}
