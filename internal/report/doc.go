// Package report renders lesson documents.
//
// This package contains writers for different output formats:
//   - SimpleWriter: plain text for terminal display (default)
//   - MarkdownWriter: GitHub Flavored Markdown with tables and mermaid charts
//   - JSONWriter: structured JSON output
//   - YAMLWriter: structured YAML output
//
// Writers implement the Writer interface and only read the model types, so
// adding a format never touches the lesson builder.
package report
