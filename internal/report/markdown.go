package report

import (
	"io"
	"strings"

	"github.com/nao1215/charschema/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs the lesson as GitHub Flavored Markdown.
// Tables become Markdown tables and charts become mermaid pie charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the lesson in Markdown format.
func (w *MarkdownWriter) Write(lesson *model.Lesson) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(lesson.Title)
	md.PlainText("")

	for i := range lesson.Sections {
		w.writeSection(md, &lesson.Sections[i])
	}

	w.writeSummary(md, lesson)

	return len(md.String()), md.Build()
}

// writeSection writes a section heading followed by its blocks.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, section *model.Section) {
	md.H2(section.Heading())
	md.PlainText("")

	for _, block := range section.Blocks {
		if block.Heading != "" {
			md.PlainText("**" + escapeMarkdown(block.Heading) + "**")
			md.PlainText("")
		}

		switch block.Kind {
		case model.BlockParagraph:
			for _, line := range block.Lines {
				md.PlainText(escapeMarkdown(line))
			}
		case model.BlockBullets:
			items := make([]string, len(block.Lines))
			for i, item := range block.Lines {
				items[i] = escapeMarkdown(item)
			}
			md.BulletList(items...)
		case model.BlockTable:
			w.writeTable(md, block.Table)
		case model.BlockFields:
			w.writeFields(md, block.Fields)
		case model.BlockChart:
			w.writePieChart(md, block.Chart)
		}
		md.PlainText("")
	}
}

// writeTable writes a Markdown table. Cells are wrapped in code spans so
// spaces and symbols survive rendering.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, table *model.Table) {
	if table == nil {
		return
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = codeSpan(escapePipe(cell))
		}
		rows[i] = cells
	}

	header := make([]string, len(table.Header))
	for i, h := range table.Header {
		header[i] = escapePipe(h)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})
}

// writeFields writes label/value pairs as a two-column table.
func (w *MarkdownWriter) writeFields(md *markdown.Markdown, fields []model.Field) {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{escapePipe(f.Label), codeSpan(escapePipe(f.Value))}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
}

// writePieChart writes a mermaid pie chart of the non-empty slices.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, chart *model.Chart) {
	if chart == nil {
		return
	}

	slices := chart.NonZero()
	if len(slices) == 0 {
		return
	}

	pie := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(chart.Title),
		piechart.WithShowData(true),
	)
	for _, s := range slices {
		pie.LabelAndIntValue(s.Label, uint64(s.Value)) //nolint:gosec // chart values are counts
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, pie.String())
}

// writeSummary writes the key concepts as a note alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, lesson *model.Lesson) {
	if len(lesson.KeyConcepts) == 0 {
		return
	}

	md.HorizontalRule()
	md.PlainText("")
	md.H2("Key Concepts")
	md.PlainText("")
	md.BulletList(lesson.KeyConcepts...)
	md.PlainText("")
	md.Note("Unicode U+0000 to U+007F is identical to ASCII, so every ASCII file is also valid Unicode text.")
}

// codeSpan wraps s in backticks, using a double fence when s contains one.
func codeSpan(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

// escapePipe escapes "|" so it does not end a table cell. GFM applies the
// escape inside code spans too.
func escapePipe(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// escapeMarkdown escapes characters that would otherwise start emphasis.
func escapeMarkdown(s string) string {
	return strings.NewReplacer("*", `\*`, "_", `\_`).Replace(s)
}
