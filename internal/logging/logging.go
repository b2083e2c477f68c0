// Package logging builds the process logger: a log/slog handler that writes
// colored records to the terminal and a plain copy to a log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// LevelTrace sits below debug and is used for per-event tracing.
const LevelTrace = slog.Level(-8)

const targetKey = "target"

var levelStyles = map[slog.Level]lipgloss.Style{
	LevelTrace:      lipgloss.NewStyle().Foreground(lipgloss.Color("#919191")),
	slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF2F")),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E8FF00")),
	slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#AD463D")),
}

type Options struct {
	Level slog.Level
	// File receives an uncolored copy of every record when set.
	File  string
	Color bool
	// Stdout defaults to os.Stdout.
	Stdout io.Writer
}

// New returns the logger and a closer for the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	handlers := []*handler{newHandler(out, opts.Level, opts.Color)}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, newHandler(f, opts.Level, false))
		closer = f
	}
	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(fanout(handlers)), closer, nil
}

// Core tags records from the framework itself.
func Core(l *slog.Logger) *slog.Logger { return l.With(targetKey, "CORE") }

// Client tags records from application code built on the framework.
func Client(l *slog.Logger) *slog.Logger { return l.With(targetKey, "CLIENT") }

func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return LevelTrace, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return l, nil
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l <= LevelTrace:
		return levelStyles[LevelTrace]
	case l < slog.LevelInfo:
		return levelStyles[slog.LevelDebug]
	case l < slog.LevelWarn:
		return levelStyles[slog.LevelInfo]
	case l < slog.LevelError:
		return levelStyles[slog.LevelWarn]
	default:
		return levelStyles[slog.LevelError]
	}
}

// handler writes "[time LEVEL target] message key=value ..." lines.
type handler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	color  bool
	target string
	prefix string
	attrs  []slog.Attr
	now    func() time.Time
}

func newHandler(out io.Writer, level slog.Leveler, color bool) *handler {
	return &handler{mu: &sync.Mutex{}, out: out, level: level, color: color, now: time.Now}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	ts := r.Time
	if ts.IsZero() {
		ts = h.now()
	}
	lvl := levelName(r.Level)
	if h.color {
		lvl = levelStyle(r.Level).Render(lvl)
	}
	b.WriteByte('[')
	b.WriteString(ts.UTC().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(lvl)
	if h.target != "" {
		b.WriteByte(' ')
		b.WriteString(h.target)
	}
	b.WriteString("] ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, p, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	v := a.Value.String()
	if strings.ContainsAny(v, " =\"") {
		v = fmt.Sprintf("%q", v)
	}
	b.WriteString(v)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if a.Key == targetKey && h.prefix == "" {
			h2.target = a.Value.String()
			continue
		}
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

type fanout []*handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs).(*handler)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name).(*handler)
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
