// Package log provides logging built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic escaping of control characters in log values
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Control characters
//
// charschema logs the characters it is formatting, and those include BEL,
// ESC and the other ASCII control codes. Written raw to a terminal they ring
// the bell or start escape sequences. VisibleHandler rewrites every control
// character in string values into <ABBR> or <U+XXXX> form before the record
// reaches the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("formatting", "char", "\x1b") // char=<ESC>
//	slog.SetDefault(logger)
package log
