package charcode

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a character's code point does not fit
	// the requested encoding width.
	ErrOutOfRange = errors.New("code point out of range")

	// ErrUnknownCodePage is returned by LookupCodePage for names it does not know.
	ErrUnknownCodePage = errors.New("unknown code page")
)

// RangeError reports a character whose code point exceeds the largest value
// an encoding can represent. It matches ErrOutOfRange with errors.Is.
type RangeError struct {
	// Char is the offending character.
	Char rune
	// Code is the character's code point.
	Code int
	// Max is the largest code point the encoding accepts.
	Max int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("character %q (%s) is not in ASCII range (0-%d)",
		e.Char, ToUnicodeNotation(e.Char), e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
