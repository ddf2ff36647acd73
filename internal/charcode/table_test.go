package charcode

import (
	"errors"
	"testing"
)

func TestControlName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		wantAbbr string
		wantName string
		wantOK   bool
	}{
		{0, "NUL", "Null", true},
		{1, "SOH", "Start of Heading", true},
		{7, "BEL", "Bell", true},
		{10, "LF", "Line Feed", true},
		{13, "CR", "Carriage Return", true},
		{27, "ESC", "Escape", true},
		{31, "US", "Unit Separator", true},
		{127, "DEL", "Delete", true},
		{32, "", "", false},
		{-1, "", "", false},
		{128, "", "", false},
	}

	for _, tt := range tests {
		abbr, name, ok := ControlName(tt.code)
		if abbr != tt.wantAbbr || name != tt.wantName || ok != tt.wantOK {
			t.Errorf("ControlName(%d) = (%q, %q, %v), want (%q, %q, %v)",
				tt.code, abbr, name, ok, tt.wantAbbr, tt.wantName, tt.wantOK)
		}
	}
}

func TestControlDescription(t *testing.T) {
	t.Parallel()

	if got := ControlDescription(10); got != "LF (Line Feed)" {
		t.Errorf("expected 'LF (Line Feed)', got %q", got)
	}
	if got := ControlDescription('A'); got != "" {
		t.Errorf("expected empty description for 'A', got %q", got)
	}
}

func TestIsControl(t *testing.T) {
	t.Parallel()

	for code := 0; code <= MaxExtendedASCII; code++ {
		want := code < 32 || code == 127
		if got := IsControl(code); got != want {
			t.Errorf("IsControl(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestLookupCodePage(t *testing.T) {
	t.Parallel()

	t.Run("latin-1 maps bytes to identical code points", func(t *testing.T) {
		t.Parallel()
		cp, err := LookupCodePage("ISO-8859-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for b := 0xA0; b <= 0xFF; b++ {
			if got := cp.Rune(byte(b)); int(got) != b {
				t.Errorf("Rune(0x%02X) = %U, want U+%04X", b, got, b)
			}
		}
	})

	t.Run("windows-1252 maps 0x80 to the euro sign", func(t *testing.T) {
		t.Parallel()
		cp, err := LookupCodePage("windows-1252")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cp.Rune(0x80); got != '€' {
			t.Errorf("expected €, got %q", got)
		}
	})

	t.Run("cp437 maps 0x80 to C cedilla", func(t *testing.T) {
		t.Parallel()
		cp, err := LookupCodePage("cp437")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cp.Rune(0x80); got != 'Ç' {
			t.Errorf("expected Ç, got %q", got)
		}
	})

	t.Run("ASCII bytes are shared by every code page", func(t *testing.T) {
		t.Parallel()
		for _, name := range CodePageNames() {
			cp, err := LookupCodePage(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for b := 0x20; b < 0x7F; b++ {
				if got := cp.Rune(byte(b)); int(got) != b {
					t.Errorf("%s: Rune(0x%02X) = %U", name, b, got)
				}
			}
		}
	})

	t.Run("unknown name returns ErrUnknownCodePage", func(t *testing.T) {
		t.Parallel()
		_, err := LookupCodePage("ebcdic")
		if !errors.Is(err, ErrUnknownCodePage) {
			t.Errorf("expected ErrUnknownCodePage, got %v", err)
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   rune
		want Class
	}{
		{0, ClassControl},
		{127, ClassControl},
		{' ', ClassSpace},
		{'!', ClassPunctuation},
		{'~', ClassPunctuation},
		{'5', ClassDigit},
		{'Q', ClassUpper},
		{'q', ClassLower},
		{'é', ClassExtended},
		{'€', ClassUnicode},
	}

	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCountClasses(t *testing.T) {
	t.Parallel()

	got := CountClasses("Hello123")
	if got[ClassUpper] != 1 || got[ClassLower] != 4 || got[ClassDigit] != 3 {
		t.Errorf("unexpected counts: %v", got)
	}
	if len(Classes()) != 8 {
		t.Errorf("expected 8 classes, got %d", len(Classes()))
	}
}
