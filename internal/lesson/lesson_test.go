package lesson

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/charschema/internal/charcode"
	"github.com/nao1215/charschema/internal/model"
)

// TestBuild verifies the default lesson structure.
func TestBuild(t *testing.T) {
	t.Parallel()

	l, err := Build(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("has eight sections in order", func(t *testing.T) {
		t.Parallel()
		want := []string{
			"ASCII Encoding",
			"ASCII Character Ranges",
			"Printable ASCII Characters",
			"ASCII to Unicode Conversion",
			"Extended ASCII (8-bit)",
			"Unicode Encoding",
			"Encoding Comparison",
			"Practical Example",
		}
		if len(l.Sections) != len(want) {
			t.Fatalf("expected %d sections, got %d", len(want), len(l.Sections))
		}
		for i, title := range want {
			if l.Sections[i].Title != title {
				t.Errorf("section %d: expected %q, got %q", i+1, title, l.Sections[i].Title)
			}
			if l.Sections[i].Number != i+1 {
				t.Errorf("section %d: numbered %d", i+1, l.Sections[i].Number)
			}
		}
	})

	t.Run("word table encodes HELLO", func(t *testing.T) {
		t.Parallel()
		s := l.Section("ASCII Encoding")
		table := findTable(t, s)
		if len(table.Rows) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(table.Rows))
		}
		first := table.Rows[0]
		if first[0] != "H" || first[1] != "72" || first[2] != "01001000" {
			t.Errorf("unexpected first row: %v", first)
		}
		last := s.Blocks[len(s.Blocks)-1]
		want := "Complete binary: 01001000 01000101 01001100 01001100 01001111"
		if last.Lines[0] != want {
			t.Errorf("expected %q, got %q", want, last.Lines[0])
		}
	})

	t.Run("control table lists seven codes", func(t *testing.T) {
		t.Parallel()
		table := findTable(t, l.Section("ASCII Character Ranges"))
		if len(table.Rows) != 7 {
			t.Fatalf("expected 7 rows, got %d", len(table.Rows))
		}
		del := table.Rows[6]
		if del[0] != "127" || del[1] != "0x7F" || del[2] != "01111111" || del[3] != "DEL (Delete)" {
			t.Errorf("unexpected DEL row: %v", del)
		}
	})

	t.Run("digit table covers 0 to 9", func(t *testing.T) {
		t.Parallel()
		table := findTable(t, l.Section("Printable ASCII Characters"))
		if len(table.Rows) != 10 {
			t.Fatalf("expected 10 rows, got %d", len(table.Rows))
		}
		if table.Rows[0][0] != "0" || table.Rows[0][2] != "30" {
			t.Errorf("unexpected first row: %v", table.Rows[0])
		}
	})

	t.Run("unicode table maps A to U+0041", func(t *testing.T) {
		t.Parallel()
		table := findTable(t, l.Section("ASCII to Unicode Conversion"))
		if table.Rows[0][1] != "0x41" || table.Rows[0][2] != "U+0041" {
			t.Errorf("unexpected row: %v", table.Rows[0])
		}
		if table.Rows[4][2] != "U+0020" {
			t.Errorf("expected space to map to U+0020, got %v", table.Rows[4])
		}
	})

	t.Run("extended table decodes latin-1 by default", func(t *testing.T) {
		t.Parallel()
		table := findTable(t, l.Section("Extended ASCII (8-bit)"))
		for _, row := range table.Rows {
			if row[0] == "233" && row[2] != "é" {
				t.Errorf("expected byte 233 to be é, got %v", row)
			}
		}
	})

	t.Run("comparison shows B in every notation", func(t *testing.T) {
		t.Parallel()
		s := l.Section("Encoding Comparison")
		got := map[string]string{}
		for _, f := range s.Blocks[0].Fields {
			got[f.Label] = f.Value
		}
		want := map[string]string{
			"Character":     "B",
			"ASCII decimal": "66",
			"ASCII hex":     "0x42",
			"ASCII binary":  "01000010",
			"7-bit binary":  "1000010",
			"Unicode":       "U+0042",
			"Name":          "LATIN CAPITAL LETTER B",
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s: expected %q, got %q", k, v, got[k])
			}
		}
	})

	t.Run("practical example breaks down Hello123", func(t *testing.T) {
		t.Parallel()
		s := l.Section("Practical Example")
		if s.Blocks[0].Fields[2].Value != "64 bits = 8 bytes" {
			t.Errorf("unexpected storage: %q", s.Blocks[0].Fields[2].Value)
		}
		table := findTable(t, s)
		if len(table.Rows) != 8 {
			t.Fatalf("expected 8 rows, got %d", len(table.Rows))
		}
		if table.Rows[0][0] != "'H'" || table.Rows[7][1] != "51" {
			t.Errorf("unexpected rows: %v", table.Rows)
		}
		chart := s.Blocks[len(s.Blocks)-1].Chart
		if chart == nil || chart.Total() != 8 {
			t.Errorf("expected chart totalling 8, got %+v", chart)
		}
	})

	t.Run("key concepts are listed", func(t *testing.T) {
		t.Parallel()
		if len(l.KeyConcepts) != 6 {
			t.Errorf("expected 6 key concepts, got %d", len(l.KeyConcepts))
		}
	})
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom word is used", func(t *testing.T) {
		t.Parallel()
		l, err := Build(Options{Word: "OK"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		table := findTable(t, l.Section("ASCII Encoding"))
		if len(table.Rows) != 2 || table.Rows[1][1] != "75" {
			t.Errorf("unexpected rows: %v", table.Rows)
		}
	})

	t.Run("comparison char above 127 returns a range error", func(t *testing.T) {
		t.Parallel()
		_, err := Build(Options{CompareChar: '€'})
		if !errors.Is(err, charcode.ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "encoding comparison") {
			t.Errorf("expected section in error, got %v", err)
		}
	})

	t.Run("unknown code page is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Build(Options{CodePage: "koi8-r"})
		if !errors.Is(err, charcode.ErrUnknownCodePage) {
			t.Errorf("expected ErrUnknownCodePage, got %v", err)
		}
	})

	t.Run("windows-1252 shows the euro sign at 0x80", func(t *testing.T) {
		t.Parallel()
		l, err := Build(Options{CodePage: "windows-1252"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		table := findTable(t, l.Section("Extended ASCII (8-bit)"))
		if table.Rows[0][2] != "€" || table.Rows[0][3] != "U+20AC" {
			t.Errorf("unexpected first row: %v", table.Rows[0])
		}
	})

	t.Run("logger receives one entry per example", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		if _, err := Build(Options{Logger: logger}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := strings.Count(buf.String(), "executing step"); n != 8 {
			t.Errorf("expected 8 step logs, got %d", n)
		}
	})
}

func TestSteps(t *testing.T) {
	t.Parallel()

	steps := Steps(Options{})
	if len(steps) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(steps))
	}
	if steps[4].Name() != "extended ASCII" || steps[6].Name() != "encoding comparison" {
		t.Errorf("unexpected step order: %s, %s", steps[4].Name(), steps[6].Name())
	}
}

func TestASCIITable(t *testing.T) {
	t.Parallel()

	t.Run("default range lists printable characters and DEL", func(t *testing.T) {
		t.Parallel()
		b, err := ASCIITable(DefaultTableStart, DefaultTableEnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(b.Table.Rows) != 96 {
			t.Fatalf("expected 96 rows, got %d", len(b.Table.Rows))
		}
		last := b.Table.Rows[95]
		if last[0] != "127" || last[3] != "<DEL>" {
			t.Errorf("unexpected last row: %v", last)
		}
	})

	t.Run("end is clamped to 127", func(t *testing.T) {
		t.Parallel()
		b, err := ASCIITable(120, 300)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(b.Table.Rows) != 8 {
			t.Errorf("expected 8 rows, got %d", len(b.Table.Rows))
		}
	})

	t.Run("control characters are shown by mnemonic", func(t *testing.T) {
		t.Parallel()
		b, err := ASCIITable(0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Table.Rows[0][3] != "<NUL>" || b.Table.Rows[1][3] != "<SOH>" {
			t.Errorf("unexpected rows: %v", b.Table.Rows)
		}
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := ASCIITable(100, 50); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("start above 127 is rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := ASCIITable(200, 255); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})
}

func TestCharLesson(t *testing.T) {
	t.Parallel()

	t.Run("one section per character", func(t *testing.T) {
		t.Parallel()
		l, err := CharLesson([]rune{'A', '\n'})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(l.Sections) != 2 || l.Sections[1].Title != "U+000A" {
			t.Errorf("unexpected sections: %+v", l.Sections)
		}
	})

	t.Run("non-ASCII character fails", func(t *testing.T) {
		t.Parallel()
		if _, err := CharLesson([]rune{'A', 'ñ'}); !errors.Is(err, charcode.ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})
}

func TestDescribeLesson(t *testing.T) {
	t.Parallel()

	l := DescribeLesson("AB")
	table := findTable(t, &l.Sections[0])
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][1] != "65" || table.Rows[1][2] != "01000010" {
		t.Errorf("unexpected rows: %v", table.Rows)
	}
}

// findTable returns the first table block of a section.
func findTable(t *testing.T, s *model.Section) *model.Table {
	t.Helper()
	if s == nil {
		t.Fatal("section not found")
	}
	for _, b := range s.Blocks {
		if b.Kind == model.BlockTable {
			return b.Table
		}
	}
	t.Fatalf("section %q has no table", s.Title)
	return nil
}
