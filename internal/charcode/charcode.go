package charcode

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Encoding limits.
const (
	// MaxASCII is the largest 7-bit code point.
	MaxASCII = 127
	// MaxExtendedASCII is the largest 8-bit code point.
	MaxExtendedASCII = 255
	// DEL is the only control character outside 0-31.
	DEL = 127
)

// Encoded is a character together with its decimal code point and its
// 8-bit binary form.
type Encoded struct {
	Char   rune   `json:"char" yaml:"char"`
	Code   int    `json:"code" yaml:"code"`
	Binary string `json:"binary" yaml:"binary"`
}

// CodeOf returns the numeric code point of r.
func CodeOf(r rune) int {
	return int(r)
}

// ToASCIIBinary7 returns the 7-bit binary form of r.
// It returns a *RangeError when r is outside the ASCII range.
func ToASCIIBinary7(r rune) (string, error) {
	code := CodeOf(r)
	if code > MaxASCII {
		return "", &RangeError{Char: r, Code: code, Max: MaxASCII}
	}
	return fmt.Sprintf("%07b", code), nil
}

// ToBinary8 returns r's code point as a zero-padded 8-bit binary string.
// Code points above 255 produce a longer string; nothing is truncated.
func ToBinary8(r rune) string {
	return fmt.Sprintf("%08b", CodeOf(r))
}

// ToUnicodeNotation returns r in U+XXXX notation with uppercase hex digits.
func ToUnicodeNotation(r rune) string {
	return fmt.Sprintf("U+%04X", CodeOf(r))
}

// Hex returns r's code point as at least two uppercase hex digits.
func Hex(r rune) string {
	return fmt.Sprintf("%02X", CodeOf(r))
}

// Describe encodes every character of text, preserving order.
func Describe(text string) []Encoded {
	out := make([]Encoded, 0, len(text))
	for _, r := range text {
		out = append(out, Encoded{
			Char:   r,
			Code:   CodeOf(r),
			Binary: ToBinary8(r),
		})
	}
	return out
}

// IsControl reports whether code is an ASCII control code (0-31 or 127).
func IsControl(code int) bool {
	return (code >= 0 && code < 32) || code == DEL
}

// Visible returns a printable form of r. ASCII control characters are shown
// as their mnemonic in angle brackets, e.g. "<LF>".
func Visible(r rune) string {
	if abbr, _, ok := ControlName(CodeOf(r)); ok {
		return "<" + abbr + ">"
	}
	if !unicode.IsPrint(r) {
		return "<" + ToUnicodeNotation(r) + ">"
	}
	return string(r)
}

// Name returns the Unicode name of r, e.g. "LATIN CAPITAL LETTER B".
// ASCII control characters return their long ASCII name.
func Name(r rune) string {
	if _, name, ok := ControlName(CodeOf(r)); ok {
		return name
	}
	return runenames.Name(r)
}
