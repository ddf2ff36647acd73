package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for charschema.
// Running it without a subcommand prints the full lesson.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charschema",
		Short: "Explain ASCII, Extended ASCII and Unicode with printed examples",
		Long: `charschema is a teaching aid for character encodings.

Without a subcommand it prints eight worked examples: a word in binary,
control and printable ASCII ranges, ASCII to Unicode mapping, Extended ASCII
code pages, Unicode blocks, one character in every notation, and a message
broken down character by character.

Examples:
  # Print the full lesson
  charschema

  # Use your own word and message
  charschema --word GOPHER --message "Go 1.25!"

  # Write the lesson as Markdown
  charschema -F markdown -o lesson.md`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLessonCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .charschema in current, XDG config or home directory)")
	cmd.PersistentFlags().StringP("format", "F", "",
		"Output format: text, markdown, json or yaml (default text)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	// Lesson inputs
	cmd.Flags().String("word", "", "Word converted to binary in example 1 (default HELLO)")
	cmd.Flags().String("message", "", "Message broken down in example 8 (default Hello123)")
	cmd.Flags().String("char", "", "ASCII character compared in example 7 (default B)")
	cmd.Flags().String("code-page", "",
		"Code page for the Extended ASCII sample: iso-8859-1, windows-1252 or cp437")

	// Add subcommands
	cmd.AddCommand(NewCharCmd())
	cmd.AddCommand(NewDescribeCmd())
	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
