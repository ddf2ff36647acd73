package charcode

import "unicode"

// Class groups characters the way an ASCII chart does.
type Class int

const (
	// ClassControl is 0-31 and 127.
	ClassControl Class = iota
	// ClassSpace is the space character 32.
	ClassSpace
	// ClassPunctuation is every other printable ASCII character that is not a letter or digit.
	ClassPunctuation
	// ClassDigit is 48-57.
	ClassDigit
	// ClassUpper is 65-90.
	ClassUpper
	// ClassLower is 97-122.
	ClassLower
	// ClassExtended is 128-255.
	ClassExtended
	// ClassUnicode is anything above 255.
	ClassUnicode
)

// String returns the label used in tables and charts.
func (c Class) String() string {
	switch c {
	case ClassControl:
		return "Control"
	case ClassSpace:
		return "Space"
	case ClassPunctuation:
		return "Punctuation"
	case ClassDigit:
		return "Digit"
	case ClassUpper:
		return "Uppercase"
	case ClassLower:
		return "Lowercase"
	case ClassExtended:
		return "Extended ASCII"
	case ClassUnicode:
		return "Unicode"
	default:
		return "Unknown"
	}
}

// Classes returns every class in chart order.
func Classes() []Class {
	return []Class{
		ClassControl, ClassSpace, ClassPunctuation, ClassDigit,
		ClassUpper, ClassLower, ClassExtended, ClassUnicode,
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	code := CodeOf(r)
	switch {
	case IsControl(code):
		return ClassControl
	case code > MaxExtendedASCII:
		return ClassUnicode
	case code > MaxASCII:
		return ClassExtended
	case r == ' ':
		return ClassSpace
	case r >= '0' && r <= '9':
		return ClassDigit
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= 'a' && r <= 'z':
		return ClassLower
	case unicode.IsPrint(r):
		return ClassPunctuation
	default:
		return ClassControl
	}
}

// CountClasses tallies the classes of every character in text.
func CountClasses(text string) map[Class]int {
	counts := make(map[Class]int)
	for _, r := range text {
		counts[Classify(r)]++
	}
	return counts
}
