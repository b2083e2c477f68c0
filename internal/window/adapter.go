// Package window turns raw platform notifications into event payloads and
// feeds them to the application pipeline.
package window

import (
	"fmt"
	"log/slog"

	"strife/internal/events"
	"strife/internal/platform"
)

// RawEvent passes a platform notification through unmodified, for layers
// that need more than the translated payloads carry (text input, wheel).
type RawEvent struct {
	Event platform.Event
}

func (e RawEvent) Name() string { return "RawWindowEvent" }
func (e RawEvent) String() string {
	return fmt.Sprintf("RawWindowEvent: %s", e.Event.Type)
}
func (e RawEvent) Handled() bool { return false }

// Sink is the top of the pipeline: OnEvent dispatches a payload, OnUpdate
// runs one update pass.
type Sink interface {
	OnEvent(e events.Event)
	OnUpdate()
}

// Translate maps a platform notification to its payload. Notifications
// without a payload kind report false.
func Translate(id events.WindowID, ev platform.Event) (events.Event, bool) {
	switch ev.Type {
	case platform.EventClose:
		return events.NewWindowClose(id), true
	case platform.EventRedraw:
		return events.NewWindowRedrawRequested(id), true
	case platform.EventResize:
		return events.NewWindowResize(id, ev.Width, ev.Height), true
	case platform.EventKeyDown:
		return events.NewKeyPressed(events.KeyCode(ev.Key), ev.Repeat), true
	case platform.EventKeyUp:
		return events.NewKeyReleased(events.KeyCode(ev.Key)), true
	case platform.EventMouseMove:
		return events.NewMouseMove(events.DeviceID(ev.Device), ev.X, ev.Y), true
	case platform.EventMouseDown:
		return events.NewMouseButtonPressed(events.DeviceID(ev.Device), events.MouseButton(ev.Button)), true
	case platform.EventMouseUp:
		return events.NewMouseButtonReleased(events.DeviceID(ev.Device), events.MouseButton(ev.Button)), true
	}
	return nil, false
}

type Adapter struct {
	id     events.WindowID
	sink   Sink
	raw    bool
	logger *slog.Logger
}

type Option func(*Adapter)

// WithRawEvents forwards every notification as a RawEvent before its
// translated payload.
func WithRawEvents(on bool) Option {
	return func(a *Adapter) { a.raw = on }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAdapter(id events.WindowID, sink Sink, opts ...Option) *Adapter {
	a := &Adapter{id: id, sink: sink, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle delivers one notification and reports whether it was a close
// request, after which the host loop must stop.
func (a *Adapter) Handle(ev platform.Event) bool {
	if a.raw {
		a.sink.OnEvent(RawEvent{Event: ev})
	}
	payload, ok := Translate(a.id, ev)
	if !ok {
		return false
	}
	switch payload.(type) {
	case events.WindowRedrawRequested:
		a.sink.OnUpdate()
		return false
	case events.WindowClose:
		a.logger.Info("close requested", "window", a.id)
		a.sink.OnEvent(payload)
		return true
	}
	a.sink.OnEvent(payload)
	return false
}

// Pump handles one frame of notifications from w. Events queued after a
// close request are dropped.
func (a *Adapter) Pump(w platform.Window) error {
	for _, ev := range w.PollEvents() {
		if a.Handle(ev) {
			return platform.ErrClosed
		}
	}
	return nil
}
