// Package model defines the lesson document printed by charschema.
//
// This package contains the following main types:
//   - Lesson: the full document, an ordered list of sections and a summary
//   - Section: one numbered example with its content blocks
//   - Block: a paragraph, bullet list, table, field list or chart
//
// The lesson package fills these structures from charcode results and the
// report package renders them. Every type serialises to JSON and YAML so the
// same document can be written in any output format.
package model
