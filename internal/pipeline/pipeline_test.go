package pipeline

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/charschema/internal/model"
)

// discardLogger returns a logger that drops all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// addSection returns a step that appends a section with the given title.
func addSection(title string) Step {
	return NewStep(strings.ToLower(title), func(l *model.Lesson) error {
		l.AddSection(title)
		return nil
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty pipeline", func(t *testing.T) {
		t.Parallel()
		p := New()
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies logger option", func(t *testing.T) {
		t.Parallel()
		logger := discardLogger()
		p := New(WithLogger(logger))
		if p.logger != logger {
			t.Error("expected custom logger")
		}
	})
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()
		p := New(WithLogger(discardLogger()))
		p.AddStep(addSection("First"))
		p.AddSteps(addSection("Second"), addSection("Third"))

		l := model.NewLesson("test")
		if err := p.Execute(l); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(l.Sections) != 3 {
			t.Fatalf("expected 3 sections, got %d", len(l.Sections))
		}
		if l.Sections[2].Title != "Third" || l.Sections[2].Number != 3 {
			t.Errorf("unexpected last section: %+v", l.Sections[2])
		}
		names := p.StepNames()
		if strings.Join(names, ",") != "first,second,third" {
			t.Errorf("unexpected step names: %v", names)
		}
	})

	t.Run("stops at the first error and names the step", func(t *testing.T) {
		t.Parallel()
		errBoom := errors.New("boom")
		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			addSection("First"),
			NewStep("broken", func(*model.Lesson) error { return errBoom }),
			addSection("Never"),
		)

		l := model.NewLesson("test")
		err := p.Execute(l)
		if !errors.Is(err, errBoom) {
			t.Fatalf("expected errBoom, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "broken: ") {
			t.Errorf("expected step name prefix, got %q", err.Error())
		}
		if len(l.Sections) != 1 {
			t.Errorf("expected execution to stop after 1 section, got %d", len(l.Sections))
		}
	})

	t.Run("failures are not logged above debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		p := New(WithLogger(logger))
		p.AddStep(NewStep("broken", func(*model.Lesson) error { return errors.New("boom") }))

		if err := p.Execute(model.NewLesson("test")); err == nil {
			t.Fatal("expected error")
		}
		if buf.Len() != 0 {
			t.Errorf("expected no log output, got %q", buf.String())
		}
	})

	t.Run("logs each step at debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		p := New(WithLogger(logger))
		p.AddStep(addSection("Logged"))

		if err := p.Execute(model.NewLesson("test")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "step=logged") {
			t.Errorf("expected step log, got %q", buf.String())
		}
	})
}
