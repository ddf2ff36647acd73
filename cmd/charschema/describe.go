package main

import (
	"github.com/nao1215/charschema/internal/lesson"
	"github.com/spf13/cobra"
)

// NewDescribeCmd creates the describe command.
func NewDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <text>",
		Short: "Break text down into code points and 8-bit binary",
		Long: `Describe lists every character of the text with its decimal code point and
binary form, followed by a count of character classes.

Characters above 255 produce binary strings longer than 8 digits.

Examples:
  charschema describe "Hello123"
  charschema describe -F markdown "naïve café"`,
		Args: cobra.ExactArgs(1),
		RunE: runDescribeCmd,
	}
}

// runDescribeCmd executes the describe command.
func runDescribeCmd(cmd *cobra.Command, args []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	logger.Debug("describing text", "text", args[0])

	return outputLesson(cmd, cfg, lesson.DescribeLesson(args[0]), logger)
}
