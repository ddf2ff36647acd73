package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/charschema/internal/config"
	"github.com/nao1215/charschema/internal/lesson"
	"github.com/nao1215/charschema/internal/log"
	"github.com/nao1215/charschema/internal/model"
	"github.com/nao1215/charschema/internal/report"
	"github.com/spf13/cobra"
)

// runLessonCmd prints the full lesson.
func runLessonCmd(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	logger.Debug("building lesson",
		"word", cfg.Lesson.Word,
		"message", cfg.Lesson.Message,
		"char", cfg.Lesson.CompareChar,
		"codePage", cfg.Lesson.CodePage,
	)

	opts := cfg.LessonOptions()
	opts.Logger = logger

	l, err := lesson.Build(opts)
	if err != nil {
		return err
	}

	return outputLesson(cmd, cfg, l, logger)
}

// prepare builds and validates the configuration and sets up logging.
func prepare(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	return cfg, logger, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// changedString returns the value of a string flag if the user set it.
// Flags the command does not define are reported as unset.
func changedString(cmd *cobra.Command, name string) (string, bool) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return "", false
	}
	return flag.Value.String(), true
}

// buildConfig creates a Config from defaults, the config file, environment
// variables and cobra command flags, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if path, ok := changedString(cmd, "config"); ok {
		cfg.ConfigFilePath = path
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.ApplyFile(file); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, err
	}

	if value, ok := changedString(cmd, "format"); ok {
		format, err := config.ParseFormat(value)
		if err != nil {
			return nil, err
		}
		cfg.Format = format
	}
	if value, ok := changedString(cmd, "output"); ok {
		cfg.ReportFile = value
	}
	if value, ok := changedString(cmd, "word"); ok {
		cfg.Lesson.Word = value
	}
	if value, ok := changedString(cmd, "message"); ok {
		cfg.Lesson.Message = value
	}
	if value, ok := changedString(cmd, "char"); ok {
		cfg.Lesson.CompareChar = value
	}
	if value, ok := changedString(cmd, "code-page"); ok {
		cfg.Lesson.CodePage = value
	}

	return cfg, nil
}

// environKey is the context key for an environment override.
type environKey struct{}

// withEnviron makes commands run with ctx read CHARSCHEMA_* settings from
// environ instead of the process environment.
func withEnviron(ctx context.Context, environ map[string]string) context.Context {
	return context.WithValue(ctx, environKey{}, environ)
}

// loadEnv reads CHARSCHEMA_* settings from the environment attached to the
// command context, or from the process environment.
func loadEnv(cmd *cobra.Command) (config.Env, error) {
	if ctx := cmd.Context(); ctx != nil {
		if environ, ok := ctx.Value(environKey{}).(map[string]string); ok {
			return config.LoadEnvFrom(environ)
		}
	}
	return config.LoadEnv()
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return log.NewLogger(w, verbose)
}

// newWriter returns the report writer for the configured format.
func newWriter(format config.Format, output io.Writer) report.Writer {
	switch format {
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	case config.FormatJSON:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case config.FormatYAML:
		return report.NewYAMLWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}

// outputLesson writes the lesson to the report file or the command's stdout.
func outputLesson(cmd *cobra.Command, cfg *config.Config, l *model.Lesson, logger *slog.Logger) error {
	output := cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	n, err := newWriter(cfg.Format, output).Write(l)
	if err != nil {
		return fmt.Errorf("failed to write %s output: %w", cfg.Format, err)
	}

	logger.Debug("lesson written",
		"format", string(cfg.Format),
		"file", cfg.ReportFile,
		"bytes", n,
		"sections", len(l.Sections),
	)
	return nil
}
