package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from CHARSCHEMA_* environment variables.
type Env struct {
	Format      string   `env:"CHARSCHEMA_FORMAT"`
	Word        string   `env:"CHARSCHEMA_WORD"`
	Message     string   `env:"CHARSCHEMA_MESSAGE"`
	CompareChar string   `env:"CHARSCHEMA_CHAR"`
	TestChars   []string `env:"CHARSCHEMA_TEST_CHARS" envSeparator:","`
	CodePage    string   `env:"CHARSCHEMA_CODE_PAGE"`
}

// LoadEnv reads the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// LoadEnvFrom reads settings from the given variables instead of the process
// environment.
func LoadEnvFrom(environ map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overrides c with the non-empty settings of e.
func (c *Config) ApplyEnv(e Env) error {
	if e.Format != "" {
		format, err := ParseFormat(e.Format)
		if err != nil {
			return fmt.Errorf("CHARSCHEMA_FORMAT: %w", err)
		}
		c.Format = format
	}
	c.Lesson.merge(LessonConfig{
		Word:        e.Word,
		Message:     e.Message,
		CompareChar: e.CompareChar,
		TestChars:   e.TestChars,
		CodePage:    e.CodePage,
	})
	return nil
}
