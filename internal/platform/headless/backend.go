// Package headless is a windowless backend that replays scripted input. It
// drives smoke runs and tests without a display.
package headless

import (
	"context"
	"errors"
	"fmt"

	"strife/internal/platform"

	"github.com/google/uuid"
)

type Backend struct {
	maxFrames int
	script    [][]platform.Event
}

// New returns a backend that stops after maxFrames ticks. Zero or less runs
// until the window closes or the context ends.
func New(maxFrames int) *Backend {
	return &Backend{maxFrames: maxFrames}
}

// Script queues events for consecutive frames, starting with the first
// frame not yet scripted. Windows already created see the new frames too.
func (b *Backend) Script(frames ...[]platform.Event) *Backend {
	b.script = append(b.script, frames...)
	return b
}

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	if cfg.WidthPx <= 0 || cfg.HeightPx <= 0 {
		return nil, fmt.Errorf("headless window %q: invalid size %dx%d", cfg.Title, cfg.WidthPx, cfg.HeightPx)
	}
	return &Window{
		id:      uuid.New(),
		title:   cfg.Title,
		w:       cfg.WidthPx,
		h:       cfg.HeightPx,
		scale:   1.0,
		backend: b,
	}, nil
}

// Run ticks frame until it returns platform.ErrClosed, the frame budget is
// spent or ctx is done.
func (b *Backend) Run(ctx context.Context, w platform.Window, frame platform.Frame) error {
	for n := 0; b.maxFrames <= 0 || n < b.maxFrames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame.Update(w); err != nil {
			if errors.Is(err, platform.ErrClosed) {
				return nil
			}
			return fmt.Errorf("frame %d: %w", n, err)
		}
	}
	return nil
}

type Window struct {
	id      uuid.UUID
	title   string
	w       int
	h       int
	scale   float32
	closed  bool
	frame   int
	backend *Backend
}

// PollEvents returns the next scripted frame followed by a redraw tick.
// Resize events in the script also update the reported size.
func (w *Window) PollEvents() []platform.Event {
	if w.closed {
		return []platform.Event{{Type: platform.EventClose}}
	}
	var out []platform.Event
	if script := w.backend.script; w.frame < len(script) {
		out = append(out, script[w.frame]...)
	}
	w.frame++
	for _, ev := range out {
		if ev.Type == platform.EventResize {
			w.w, w.h = ev.Width, ev.Height
		}
	}
	return append(out, platform.Event{Type: platform.EventRedraw})
}

func (w *Window) ID() uuid.UUID      { return w.id }
func (w *Window) SizePx() (int, int) { return w.w, w.h }
func (w *Window) Scale() float32     { return w.scale }
func (w *Window) Title() string      { return w.title }
func (w *Window) Frames() int        { return w.frame }
func (w *Window) SetTitle(title string) {
	w.title = title
}

// Close makes the next poll report a close request.
func (w *Window) Close() { w.closed = true }
