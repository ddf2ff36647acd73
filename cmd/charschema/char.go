package main

import (
	"strings"

	"github.com/nao1215/charschema/internal/lesson"
	"github.com/spf13/cobra"
)

// NewCharCmd creates the char command.
func NewCharCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "char <characters>...",
		Short: "Show ASCII characters in every notation",
		Long: `Char prints each character of its arguments as decimal, hex, 8-bit and
7-bit binary, Unicode notation and Unicode name.

Only ASCII characters (0-127) have a 7-bit form; anything else is an error.

Examples:
  # One character
  charschema char B

  # Every character of a word
  charschema char GO

  # As JSON
  charschema char -F json A`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCharCmd,
	}
}

// runCharCmd executes the char command.
func runCharCmd(cmd *cobra.Command, args []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	chars := []rune(strings.Join(args, ""))
	logger.Debug("comparing characters", "count", len(chars))

	l, err := lesson.CharLesson(chars)
	if err != nil {
		return err
	}

	return outputLesson(cmd, cfg, l, logger)
}
