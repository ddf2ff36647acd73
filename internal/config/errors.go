package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrInvalidFormat is returned when the output format is not one of
	// text, markdown, json or yaml.
	ErrInvalidFormat = errors.New("invalid output format: must be text, markdown, json or yaml")

	// ErrEmptyWord is returned when the example word is empty.
	ErrEmptyWord = errors.New("invalid word: must not be empty")

	// ErrEmptyMessage is returned when the example message is empty.
	ErrEmptyMessage = errors.New("invalid message: must not be empty")

	// ErrInvalidCompareChar is returned when the comparison character is not
	// exactly one character, or is NUL.
	ErrInvalidCompareChar = errors.New("invalid comparison character: must be exactly one character other than NUL")

	// ErrInvalidTestChars is returned when a test character entry is not
	// exactly one character.
	ErrInvalidTestChars = errors.New("invalid test characters: each entry must be exactly one character")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
