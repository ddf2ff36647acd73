// Package charcode converts single characters into the numeric and textual
// forms used when teaching character encodings: decimal code points, 7-bit
// and 8-bit binary strings, hexadecimal and Unicode U+XXXX notation.
//
// Every function works on a single rune. Strings are handled one rune at a
// time by Describe, which preserves input order.
//
// # Ranges
//
//   - ASCII covers code points 0-127 and fits in 7 bits.
//   - Extended ASCII covers 0-255 and fits in 8 bits. Bytes 128-255 have no
//     single meaning; a CodePage maps them to Unicode runes.
//   - Unicode code points beyond 255 are shown in U+XXXX notation, which
//     widens past four hex digits when needed.
//
// ToASCIIBinary7 is the only function with a failure mode. It returns a
// *RangeError, which matches ErrOutOfRange, for code points above 127.
package charcode
