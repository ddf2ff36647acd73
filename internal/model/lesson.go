package model

import "strconv"

// Lesson is the complete document printed by charschema.
type Lesson struct {
	// Title is printed between rules at the top and bottom of the text report.
	Title string `json:"title" yaml:"title"`

	// Sections are the numbered examples in print order.
	Sections []Section `json:"sections" yaml:"sections"`

	// KeyConcepts is the closing summary list.
	KeyConcepts []string `json:"keyConcepts" yaml:"keyConcepts"`
}

// Section is one example of the lesson. Number is 0 for sections added with
// AddPlainSection.
type Section struct {
	Number int     `json:"number,omitempty" yaml:"number,omitempty"`
	Title  string  `json:"title" yaml:"title"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// NewLesson creates an empty lesson with the given title.
func NewLesson(title string) *Lesson {
	return &Lesson{Title: title}
}

// AddSection appends a section numbered after the existing ones and returns it
// so callers can add blocks. The pointer is valid until the next AddSection.
func (l *Lesson) AddSection(title string) *Section {
	l.Sections = append(l.Sections, Section{
		Number: len(l.Sections) + 1,
		Title:  title,
	})
	return &l.Sections[len(l.Sections)-1]
}

// AddPlainSection appends an unnumbered section whose heading is its title.
func (l *Lesson) AddPlainSection(title string) *Section {
	l.Sections = append(l.Sections, Section{Title: title})
	return &l.Sections[len(l.Sections)-1]
}

// Add appends blocks to the section.
func (s *Section) Add(blocks ...Block) *Section {
	s.Blocks = append(s.Blocks, blocks...)
	return s
}

// Heading returns the section heading, e.g. "Example 1: ASCII Encoding".
// Unnumbered sections are headed by their title alone.
func (s *Section) Heading() string {
	if s.Number == 0 {
		return s.Title
	}
	return "Example " + strconv.Itoa(s.Number) + ": " + s.Title
}

// Section returns the section with the given title, or nil.
func (l *Lesson) Section(title string) *Section {
	for i := range l.Sections {
		if l.Sections[i].Title == title {
			return &l.Sections[i]
		}
	}
	return nil
}

