package model

import (
	"fmt"
	"strings"
)

// BlockKind identifies how a Block is rendered.
type BlockKind int

const (
	// BlockParagraph is free text, one entry per line.
	BlockParagraph BlockKind = iota
	// BlockBullets is an unordered list.
	BlockBullets
	// BlockTable is a table with a header row.
	BlockTable
	// BlockFields is a list of label/value pairs printed as aligned columns.
	BlockFields
	// BlockChart is a labelled distribution of counts.
	BlockChart
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockBullets:
		return "bullets"
	case BlockTable:
		return "table"
	case BlockFields:
		return "fields"
	case BlockChart:
		return "chart"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *BlockKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "paragraph":
		*k = BlockParagraph
	case "bullets":
		*k = BlockBullets
	case "table":
		*k = BlockTable
	case "fields":
		*k = BlockFields
	case "chart":
		*k = BlockChart
	default:
		return fmt.Errorf("unknown block kind %q", text)
	}
	return nil
}

// Block is one piece of section content. Only the fields matching Kind are set.
type Block struct {
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Heading is an optional caption printed above the block, e.g. "Digits:".
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// Lines holds paragraph lines or bullet items.
	Lines []string `json:"lines,omitempty" yaml:"lines,omitempty"`

	Table  *Table  `json:"table,omitempty" yaml:"table,omitempty"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Chart  *Chart  `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Table is a header row and data rows of equal width.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Field is a labelled value such as "ASCII hex: 0x42".
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Chart is a titled distribution. Slices with a zero value are kept so that
// every category is visible in structured output.
type Chart struct {
	Title  string  `json:"title" yaml:"title"`
	Slices []Slice `json:"slices" yaml:"slices"`
}

// Slice is one category of a Chart.
type Slice struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Total returns the sum of all slice values.
func (c *Chart) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

// NonZero returns the slices with a positive value, in order.
func (c *Chart) NonZero() []Slice {
	var out []Slice
	for _, s := range c.Slices {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Paragraph creates a paragraph block.
func Paragraph(lines ...string) Block {
	return Block{Kind: BlockParagraph, Lines: lines}
}

// Bullets creates a bullet list block with an optional heading.
func Bullets(heading string, items ...string) Block {
	return Block{Kind: BlockBullets, Heading: heading, Lines: items}
}

// TableBlock creates a table block with an optional heading.
func TableBlock(heading string, header []string, rows [][]string) Block {
	return Block{Kind: BlockTable, Heading: heading, Table: &Table{Header: header, Rows: rows}}
}

// Fields creates a label/value block with an optional heading.
func Fields(heading string, fields ...Field) Block {
	return Block{Kind: BlockFields, Heading: heading, Fields: fields}
}

// ChartBlock creates a chart block.
func ChartBlock(title string, slices ...Slice) Block {
	return Block{Kind: BlockChart, Chart: &Chart{Title: title, Slices: slices}}
}
