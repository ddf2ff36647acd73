// Package lesson builds the character encoding lesson from charcode results.
//
// Build produces eight numbered examples followed by a key concepts summary:
//
//  1. ASCII Encoding: a word converted to 8-bit binary
//  2. ASCII Character Ranges: control characters and printable ranges
//  3. Printable ASCII Characters: digit and uppercase tables
//  4. ASCII to Unicode Conversion: ASCII hex against U+XXXX
//  5. Extended ASCII (8-bit): bytes 128-255 through a code page
//  6. Unicode Encoding: overview and common blocks
//  7. Encoding Comparison: one character in every notation
//  8. Practical Example: a message broken down character by character
//
// Errors from charcode propagate out of Build. The defaults never trigger
// one, but a comparison character above 127 fails the 7-bit conversion.
package lesson

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nao1215/charschema/internal/charcode"
	"github.com/nao1215/charschema/internal/model"
	"github.com/nao1215/charschema/internal/pipeline"
)

// Title is the heading of the lesson document.
const Title = "CHAPTER 11: Coding Schemas (ASCII and Unicode)"

// Defaults for the lesson inputs.
const (
	DefaultWord        = "HELLO"
	DefaultMessage     = "Hello123"
	DefaultCompareChar = 'B'
)

// DefaultTestChars are the characters shown in the ASCII to Unicode table.
var DefaultTestChars = []rune{'A', 'Z', '0', '9', ' '}

// Options are the inputs of a lesson. Zero values fall back to the defaults.
type Options struct {
	// Word is converted to binary in example 1.
	Word string
	// Message is broken down in example 8.
	Message string
	// CompareChar is shown in every notation in example 7. NUL cannot be
	// compared; 0 selects DefaultCompareChar.
	CompareChar rune
	// TestChars are mapped from ASCII to Unicode in example 4.
	TestChars []rune
	// CodePage gives meaning to the Extended ASCII sample in example 5.
	CodePage string
	// Logger receives step progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Word:        DefaultWord,
		Message:     DefaultMessage,
		CompareChar: DefaultCompareChar,
		TestChars:   append([]rune(nil), DefaultTestChars...),
		CodePage:    charcode.DefaultCodePage,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Word == "" {
		o.Word = d.Word
	}
	if o.Message == "" {
		o.Message = d.Message
	}
	if o.CompareChar == 0 {
		o.CompareChar = d.CompareChar
	}
	if len(o.TestChars) == 0 {
		o.TestChars = d.TestChars
	}
	if o.CodePage == "" {
		o.CodePage = d.CodePage
	}
	return o
}

// Build assembles the full lesson. Each example is one pipeline step, so an
// error names the example that produced it.
func Build(opts Options) (*model.Lesson, error) {
	opts = opts.withDefaults()

	var pipeOpts []pipeline.Option
	if opts.Logger != nil {
		pipeOpts = append(pipeOpts, pipeline.WithLogger(opts.Logger))
	}
	p := pipeline.New(pipeOpts...)
	p.AddSteps(Steps(opts)...)

	l := model.NewLesson(Title)
	if err := p.Execute(l); err != nil {
		return nil, err
	}
	l.KeyConcepts = keyConcepts()

	return l, nil
}

// Steps returns the eight example steps in lesson order.
func Steps(opts Options) []pipeline.Step {
	opts = opts.withDefaults()
	return []pipeline.Step{
		pipeline.NewStep("ASCII encoding", func(l *model.Lesson) error {
			addASCIIEncoding(l, opts.Word)
			return nil
		}),
		pipeline.NewStep("character ranges", func(l *model.Lesson) error {
			addCharacterRanges(l)
			return nil
		}),
		pipeline.NewStep("printable characters", func(l *model.Lesson) error {
			addPrintableCharacters(l)
			return nil
		}),
		pipeline.NewStep("ASCII to Unicode", func(l *model.Lesson) error {
			addASCIIToUnicode(l, opts.TestChars)
			return nil
		}),
		pipeline.NewStep("extended ASCII", func(l *model.Lesson) error {
			cp, err := charcode.LookupCodePage(opts.CodePage)
			if err != nil {
				return err
			}
			addExtendedASCII(l, cp)
			return nil
		}),
		pipeline.NewStep("unicode overview", func(l *model.Lesson) error {
			addUnicodeOverview(l)
			return nil
		}),
		pipeline.NewStep("encoding comparison", func(l *model.Lesson) error {
			return addEncodingComparison(l, opts.CompareChar)
		}),
		pipeline.NewStep("practical example", func(l *model.Lesson) error {
			addPracticalExample(l, opts.Message)
			return nil
		}),
	}
}

func addASCIIEncoding(l *model.Lesson, word string) {
	rows := make([][]string, 0, len(word))
	binaries := make([]string, 0, len(word))
	for _, r := range word {
		bin := charcode.ToBinary8(r)
		rows = append(rows, []string{
			charcode.Visible(r),
			strconv.Itoa(charcode.CodeOf(r)),
			bin,
		})
		binaries = append(binaries, bin)
	}

	l.AddSection("ASCII Encoding").Add(
		model.Paragraph("Word: "+word),
		model.TableBlock("", []string{"Char", "ASCII", "Binary (8-bit)"}, rows),
		model.Paragraph("Complete binary: "+strings.Join(binaries, " ")),
	)
}

// controlExamples are the control codes listed in example 2.
var controlExamples = []int{0, 1, 7, 10, 13, 27, charcode.DEL}

func addCharacterRanges(l *model.Lesson) {
	rows := make([][]string, 0, len(controlExamples))
	for _, code := range controlExamples {
		r := rune(code)
		rows = append(rows, []string{
			strconv.Itoa(code),
			"0x" + charcode.Hex(r),
			charcode.ToBinary8(r),
			charcode.ControlDescription(code),
		})
	}

	l.AddSection("ASCII Character Ranges").Add(
		model.TableBlock("Control Characters (0-31, 127):",
			[]string{"Dec", "Hex", "Binary", "Description"}, rows),
		model.Bullets("Printable Characters (32-126):",
			"32-47:  Space and punctuation",
			"48-57:  Digits (0-9)",
			"65-90:  Uppercase letters (A-Z)",
			"97-122: Lowercase letters (a-z)",
		),
	)
}

func addPrintableCharacters(l *model.Lesson) {
	l.AddSection("Printable ASCII Characters").Add(
		codeRangeTable("Digits:", '0', '9'),
		codeRangeTable("Uppercase (sample):", 'A', 'G'),
	)
}

// codeRangeTable lists Char | Dec | Hex | Binary for every rune in [from, to].
func codeRangeTable(heading string, from, to rune) model.Block {
	rows := make([][]string, 0, to-from+1)
	for r := from; r <= to; r++ {
		rows = append(rows, []string{
			charcode.Visible(r),
			strconv.Itoa(charcode.CodeOf(r)),
			charcode.Hex(r),
			charcode.ToBinary8(r),
		})
	}
	return model.TableBlock(heading, []string{"Char", "Dec", "Hex", "Binary"}, rows)
}

func addASCIIToUnicode(l *model.Lesson, chars []rune) {
	rows := make([][]string, 0, len(chars))
	for _, r := range chars {
		rows = append(rows, []string{
			charcode.Visible(r),
			"0x" + charcode.Hex(r),
			charcode.ToUnicodeNotation(r),
		})
	}

	l.AddSection("ASCII to Unicode Conversion").Add(
		model.Fields("",
			model.Field{Label: "ASCII range", Value: "0x00 to 0x7F"},
			model.Field{Label: "Unicode range", Value: "U+0000 to U+007F"},
		),
		model.TableBlock("ASCII values map directly to Unicode:",
			[]string{"Char", "ASCII Hex", "Unicode"}, rows),
	)
}

// extendedSample are the bytes shown in the Extended ASCII table.
var extendedSample = []byte{0x80, 0xA9, 0xB0, 0xB1, 0xC9, 0xE9, 0xF1, 0xFC}

func addExtendedASCII(l *model.Lesson, cp charcode.CodePage) {
	rows := make([][]string, 0, len(extendedSample))
	for _, b := range extendedSample {
		r := cp.Rune(b)
		rows = append(rows, []string{
			strconv.Itoa(int(b)),
			charcode.ToBinary8(rune(b)),
			charcode.Visible(r),
			charcode.ToUnicodeNotation(r),
		})
	}

	l.AddSection("Extended ASCII (8-bit)").Add(
		model.Paragraph("Extended ASCII uses all 8 bits: 256 characters (0-255)"),
		model.Bullets("",
			"0-127:   Standard ASCII",
			"128-255: Extended characters",
		),
		model.Bullets("Extended characters include:",
			"Accented letters (é, ñ, ü)",
			"Special symbols (©, °, ±)",
			"Box drawing characters",
			"Greek letters (α, β, γ)",
		),
		model.TableBlock("The same byte means different things per code page. "+cp.Title+":",
			[]string{"Byte", "Binary", "Char", "Unicode"}, rows),
	)
}

// unicodeBlocks are the example ranges listed in example 6.
var unicodeBlocks = [][2]string{
	{"U+0000 - U+007F", "Basic Latin (ASCII)"},
	{"U+0080 - U+00FF", "Latin-1 Supplement"},
	{"U+0370 - U+03FF", "Greek and Coptic"},
	{"U+0590 - U+05FF", "Hebrew"},
	{"U+0600 - U+06FF", "Arabic"},
	{"U+4E00 - U+9FFF", "CJK Unified Ideographs"},
}

func addUnicodeOverview(l *model.Lesson) {
	rows := make([][]string, 0, len(unicodeBlocks))
	for _, b := range unicodeBlocks {
		rows = append(rows, []string{b[0], b[1]})
	}

	l.AddSection("Unicode Encoding").Add(
		model.Paragraph("Unicode: Universal character encoding"),
		model.Bullets("",
			"Uses 16+ bits (compared to ASCII's 7 bits)",
			"Can represent 65,536+ characters",
			"Format: U+XXXX (hexadecimal)",
		),
		model.TableBlock("Unicode Blocks (examples):", []string{"Range", "Block"}, rows),
	)
}

func addEncodingComparison(l *model.Lesson, r rune) error {
	fields, err := Compare(r)
	if err != nil {
		return err
	}
	l.AddSection("Encoding Comparison").Add(model.Fields("", fields...))
	return nil
}

// Compare returns r in every notation the lesson teaches. It fails with a
// charcode.RangeError when r has no 7-bit ASCII form.
func Compare(r rune) ([]model.Field, error) {
	bin7, err := charcode.ToASCIIBinary7(r)
	if err != nil {
		return nil, err
	}
	return []model.Field{
		{Label: "Character", Value: charcode.Visible(r)},
		{Label: "ASCII decimal", Value: strconv.Itoa(charcode.CodeOf(r))},
		{Label: "ASCII hex", Value: "0x" + charcode.Hex(r)},
		{Label: "ASCII binary", Value: charcode.ToBinary8(r)},
		{Label: "7-bit binary", Value: bin7},
		{Label: "Unicode", Value: charcode.ToUnicodeNotation(r)},
		{Label: "Name", Value: charcode.Name(r)},
	}, nil
}

func addPracticalExample(l *model.Lesson, message string) {
	n := len([]rune(message))

	l.AddSection("Practical Example").Add(
		model.Fields("",
			model.Field{Label: "Message", Value: "'" + message + "'"},
			model.Field{Label: "Length", Value: fmt.Sprintf("%d characters", n)},
			model.Field{Label: "Storage (ASCII)", Value: fmt.Sprintf("%d bits = %d bytes", n*8, n)},
		),
		Breakdown("Detailed breakdown:", message),
		ClassChart(message),
	)
}

// Breakdown lists every character of text with its code and 8-bit binary.
func Breakdown(heading, text string) model.Block {
	encoded := charcode.Describe(text)
	rows := make([][]string, 0, len(encoded))
	for _, e := range encoded {
		rows = append(rows, []string{
			"'" + charcode.Visible(e.Char) + "'",
			strconv.Itoa(e.Code),
			e.Binary,
		})
	}
	return model.TableBlock(heading, []string{"Char", "Code", "Binary"}, rows)
}

// ClassChart counts the characters of text by ASCII class.
func ClassChart(text string) model.Block {
	counts := charcode.CountClasses(text)
	slices := make([]model.Slice, 0, len(charcode.Classes()))
	for _, c := range charcode.Classes() {
		slices = append(slices, model.Slice{Label: c.String(), Value: counts[c]})
	}
	return model.ChartBlock("Character classes", slices...)
}

func keyConcepts() []string {
	return []string{
		"ASCII: 7-bit encoding (0-127), 128 characters",
		"Extended ASCII: 8-bit (0-255), 256 characters",
		"Unicode: 16+ bit, supports all languages",
		"ASCII codes 0-31 and 127 are control characters",
		"ASCII 32-126 are printable characters",
		"Unicode U+0000 to U+007F = ASCII",
	}
}
