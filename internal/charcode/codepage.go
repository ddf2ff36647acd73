package charcode

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DefaultCodePage is the code page used for Extended ASCII examples.
const DefaultCodePage = "iso-8859-1"

// CodePage is a single-byte character set that gives meaning to the
// Extended ASCII bytes 128-255.
type CodePage struct {
	// Name is the lookup key, e.g. "windows-1252".
	Name string
	// Title is the human-readable name.
	Title string

	cm *charmap.Charmap
}

// codePages lists the code pages available for Extended ASCII examples.
var codePages = map[string]CodePage{
	"iso-8859-1":   {Name: "iso-8859-1", Title: "ISO 8859-1 (Latin-1)", cm: charmap.ISO8859_1},
	"windows-1252": {Name: "windows-1252", Title: "Windows-1252 (Western European)", cm: charmap.Windows1252},
	"cp437":        {Name: "cp437", Title: "IBM Code Page 437 (DOS)", cm: charmap.CodePage437},
}

// LookupCodePage returns the code page registered under name.
// Names are case-insensitive.
func LookupCodePage(name string) (CodePage, error) {
	cp, ok := codePages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CodePage{}, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownCodePage, name, strings.Join(CodePageNames(), ", "))
	}
	return cp, nil
}

// CodePageNames returns the registered code page names in sorted order.
func CodePageNames() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rune returns the Unicode rune that byte b stands for in this code page.
// Bytes the code page leaves undefined decode to U+FFFD.
func (cp CodePage) Rune(b byte) rune {
	return cp.cm.DecodeByte(b)
}
