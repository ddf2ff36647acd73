package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/nao1215/charschema/internal/charcode"
	"github.com/nao1215/charschema/internal/config"
	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// shortCommitLen is how many characters of the VCS revision are shown.
const shortCommitLen = 7

// buildSetting returns a setting recorded by the Go toolchain, or "".
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty value, or fallback.
func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}

// getVersion prefers ldflags, then the module version, then "(devel)".
func getVersion() string {
	var module string
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" {
		module = info.Main.Version
	}
	return firstNonEmpty("(devel)", version, module)
}

// getCommit prefers ldflags, then the short VCS revision.
func getCommit() string {
	rev := buildSetting("vcs.revision")
	if len(rev) > shortCommitLen {
		rev = rev[:shortCommitLen]
	}
	return firstNonEmpty("unknown", commit, rev)
}

// getDate prefers ldflags, then the VCS commit time.
func getDate() string {
	return firstNonEmpty("unknown", date, buildSetting("vcs.time"))
}

// formatNames lists the supported output formats.
func formatNames() []string {
	formats := config.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version, commit hash and build date of charschema, together
with the Go runtime, output formats and code pages it supports.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "charschema version %s\n", getVersion())
			fmt.Fprintf(out, "  commit:     %s\n", getCommit())
			fmt.Fprintf(out, "  built:      %s\n", getDate())
			fmt.Fprintf(out, "  go:         %s\n", runtime.Version())
			fmt.Fprintf(out, "  formats:    %s\n", strings.Join(formatNames(), ", "))
			fmt.Fprintf(out, "  code pages: %s\n", strings.Join(charcode.CodePageNames(), ", "))
		},
	}
}
