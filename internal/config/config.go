package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/nao1215/charschema/internal/charcode"
	"github.com/nao1215/charschema/internal/lesson"
)

// AppName is the application name used for XDG directory paths.
const AppName = "charschema"

// Format selects the report writer.
type Format string

// Supported output formats.
const (
	// FormatText is plain text for a terminal. It is the default.
	FormatText Format = "text"
	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown Format = "markdown"
	// FormatJSON is the lesson document as JSON.
	FormatJSON Format = "json"
	// FormatYAML is the lesson document as YAML.
	FormatYAML Format = "yaml"
)

// Formats returns every supported format in help-text order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}
}

// ParseFormat converts a user-supplied name into a Format.
// "md" is accepted as an alias for markdown and "yml" for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// LessonConfig holds the inputs of the lesson examples. Characters are kept
// as strings so the same struct can be read from YAML, environment variables
// and flags; Validate checks that each one is a single character.
type LessonConfig struct {
	// Word is converted to binary in the ASCII encoding example.
	Word string `yaml:"word,omitempty"`

	// Message is broken down in the practical example.
	Message string `yaml:"message,omitempty"`

	// CompareChar is shown in every notation in the encoding comparison.
	// It must be ASCII, otherwise the 7-bit conversion fails.
	CompareChar string `yaml:"compareChar,omitempty"`

	// TestChars are mapped from ASCII hex to Unicode notation.
	TestChars []string `yaml:"testChars,omitempty"`

	// CodePage gives meaning to the Extended ASCII sample bytes.
	CodePage string `yaml:"codePage,omitempty"`
}

// Config holds all configuration options for charschema.
// It is populated from defaults, the config file, environment variables and
// CLI flags, in increasing order of precedence.
type Config struct {
	// Format selects the report writer.
	Format Format

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Lesson holds the example inputs.
	Lesson LessonConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	testChars := make([]string, len(lesson.DefaultTestChars))
	for i, r := range lesson.DefaultTestChars {
		testChars[i] = string(r)
	}

	return &Config{
		Format: FormatText,
		Lesson: LessonConfig{
			Word:        lesson.DefaultWord,
			Message:     lesson.DefaultMessage,
			CompareChar: string(lesson.DefaultCompareChar),
			TestChars:   testChars,
			CodePage:    charcode.DefaultCodePage,
		},
	}
}

// XDGConfigDir returns the XDG config directory for charschema.
// On Linux: ~/.config/charschema
// On macOS: ~/Library/Application Support/charschema
// On Windows: %APPDATA%\charschema
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Lesson.Word == "" {
		return ErrEmptyWord
	}
	if c.Lesson.Message == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(c.Lesson.CompareChar) != 1 || c.Lesson.CompareChar == "\x00" {
		return fmt.Errorf("%w: %q", ErrInvalidCompareChar, c.Lesson.CompareChar)
	}
	for _, s := range c.Lesson.TestChars {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: %q", ErrInvalidTestChars, s)
		}
	}
	if _, err := charcode.LookupCodePage(c.Lesson.CodePage); err != nil {
		return err
	}
	return nil
}

// LessonOptions converts the lesson configuration for lesson.Build.
// Call Validate first; invalid characters are skipped.
func (c *Config) LessonOptions() lesson.Options {
	opts := lesson.Options{
		Word:     c.Lesson.Word,
		Message:  c.Lesson.Message,
		CodePage: c.Lesson.CodePage,
	}
	if r, size := utf8.DecodeRuneInString(c.Lesson.CompareChar); size > 0 {
		opts.CompareChar = r
	}
	for _, s := range c.Lesson.TestChars {
		if r, size := utf8.DecodeRuneInString(s); size > 0 {
			opts.TestChars = append(opts.TestChars, r)
		}
	}
	return opts
}

// merge copies the non-empty fields of other into c.
func (c *LessonConfig) merge(other LessonConfig) {
	if other.Word != "" {
		c.Word = other.Word
	}
	if other.Message != "" {
		c.Message = other.Message
	}
	if other.CompareChar != "" {
		c.CompareChar = other.CompareChar
	}
	if len(other.TestChars) > 0 {
		c.TestChars = append([]string(nil), other.TestChars...)
	}
	if other.CodePage != "" {
		c.CodePage = other.CodePage
	}
}
