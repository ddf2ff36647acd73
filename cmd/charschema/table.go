package main

import (
	"github.com/nao1215/charschema/internal/lesson"
	"github.com/spf13/cobra"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print an ASCII table",
		Long: `Table prints Dec | Hex | Binary | Char for a range of ASCII codes.
Control characters are shown by their mnemonic, e.g. <LF>.

The end of the range is capped at 127.

Examples:
  # Printable characters (default)
  charschema table

  # Control characters
  charschema table --start 0 --end 31`,
		Args: cobra.NoArgs,
		RunE: runTableCmd,
	}

	cmd.Flags().IntP("start", "s", lesson.DefaultTableStart, "First code in the table")
	cmd.Flags().IntP("end", "e", lesson.DefaultTableEnd, "Last code in the table (at most 127)")

	return cmd
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, _ []string) error {
	start, err := cmd.Flags().GetInt("start")
	if err != nil {
		return err
	}

	end, err := cmd.Flags().GetInt("end")
	if err != nil {
		return err
	}

	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	l, err := lesson.TableLesson(start, end)
	if err != nil {
		return err
	}

	return outputLesson(cmd, cfg, l, logger)
}
