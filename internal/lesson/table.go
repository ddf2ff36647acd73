package lesson

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nao1215/charschema/internal/charcode"
	"github.com/nao1215/charschema/internal/model"
)

// Printable ASCII bounds used as the default table range.
const (
	DefaultTableStart = 32
	DefaultTableEnd   = 127
)

// ErrInvalidRange is returned by ASCIITable when start is outside 0-127 or
// greater than end.
var ErrInvalidRange = errors.New("invalid ASCII table range")

// ASCIITable lists Dec | Hex | Binary | Char for every code in [start, end].
// end is clamped to 127. Control characters are shown by mnemonic.
func ASCIITable(start, end int) (model.Block, error) {
	if end > charcode.MaxASCII {
		end = charcode.MaxASCII
	}
	if start < 0 || start > charcode.MaxASCII || start > end {
		return model.Block{}, fmt.Errorf("%w: %d-%d (must be within 0-%d)",
			ErrInvalidRange, start, end, charcode.MaxASCII)
	}

	rows := make([][]string, 0, end-start+1)
	for code := start; code <= end; code++ {
		r := rune(code)
		rows = append(rows, []string{
			strconv.Itoa(code),
			charcode.Hex(r),
			charcode.ToBinary8(r),
			charcode.Visible(r),
		})
	}
	return model.TableBlock("", []string{"Dec", "Hex", "Binary", "Char"}, rows), nil
}

// TableLesson wraps an ASCII table in a single-section lesson so it can be
// rendered by any report writer.
func TableLesson(start, end int) (*model.Lesson, error) {
	block, err := ASCIITable(start, end)
	if err != nil {
		return nil, err
	}
	l := model.NewLesson("ASCII Table")
	l.AddPlainSection(fmt.Sprintf("Codes %d-%d", start, min(end, charcode.MaxASCII))).Add(block)
	return l, nil
}

// CharLesson compares each rune in every notation. Runes above 127 fail with
// a charcode.RangeError.
func CharLesson(chars []rune) (*model.Lesson, error) {
	l := model.NewLesson("Character Encodings")
	for _, r := range chars {
		fields, err := Compare(r)
		if err != nil {
			return nil, err
		}
		l.AddPlainSection(charcode.ToUnicodeNotation(r)).Add(model.Fields("", fields...))
	}
	return l, nil
}

// DescribeLesson breaks text down character by character.
func DescribeLesson(text string) *model.Lesson {
	n := len([]rune(text))
	l := model.NewLesson("Character Breakdown")
	l.AddPlainSection("Breakdown").Add(
		model.Fields("",
			model.Field{Label: "Text", Value: "'" + text + "'"},
			model.Field{Label: "Length", Value: fmt.Sprintf("%d characters", n)},
		),
		Breakdown("", text),
		ClassChart(text),
	)
	return l
}
