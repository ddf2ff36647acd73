package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/nao1215/charschema/internal/charcode"
)

// VisibleHandler wraps an slog.Handler and escapes control characters in
// the message and in string attribute values.
type VisibleHandler struct {
	// handler is the underlying slog handler that receives escaped records.
	handler slog.Handler
}

// NewVisibleHandler creates a new VisibleHandler wrapping the given handler.
// If handler is nil, the returned VisibleHandler will use slog.Default().Handler().
func NewVisibleHandler(handler slog.Handler) *VisibleHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &VisibleHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *VisibleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle escapes the record and passes it to the underlying handler.
func (h *VisibleHandler) Handle(ctx context.Context, r slog.Record) error {
	escaped := slog.NewRecord(r.Time, r.Level, Escape(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		escaped.AddAttrs(escapeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, escaped)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *VisibleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	escapedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		escapedAttrs[i] = escapeAttr(a)
	}
	return &VisibleHandler{handler: h.handler.WithAttrs(escapedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *VisibleHandler) WithGroup(name string) slog.Handler {
	return &VisibleHandler{handler: h.handler.WithGroup(name)}
}

// escapeAttr escapes a single attribute, recursively handling groups.
func escapeAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindGroup:
		attrs := v.Group()
		escapedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			escapedAttrs[i] = escapeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(escapedAttrs...)}
	case slog.KindString:
		return slog.String(a.Key, Escape(v.String()))
	default:
		return slog.Attr{Key: a.Key, Value: v}
	}
}

// Escape replaces control characters in s with a visible form.
// ASCII control codes become <ABBR>, other non-printable runes <U+XXXX>.
// Strings without control characters are returned unchanged.
func Escape(s string) string {
	if strings.IndexFunc(s, isHidden) < 0 {
		return s
	}

	var sb strings.Builder
	for _, r := range s {
		if isHidden(r) {
			sb.WriteString(charcode.Visible(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isHidden(r rune) bool {
	return unicode.IsControl(r) || !unicode.IsPrint(r)
}

// NewLogger creates a new slog.Logger that escapes control characters.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewVisibleHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a new slog.Logger that escapes control characters
// and outputs JSON. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewVisibleHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
