// Package config provides configuration structures and utilities for charschema.
// It defines the output format, lesson inputs and the config file and
// environment variables that override them.
package config
