package platform

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrClosed is returned by a Frame once the window has been closed. Backends
// treat it as a clean shutdown.
var ErrClosed = errors.New("window closed")

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Resizable   bool
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventRedraw
	EventDPIChanged
	EventKeyDown
	EventKeyUp
	EventTextInput
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

var eventTypeNames = [...]string{
	EventUnknown:    "unknown",
	EventClose:      "close",
	EventResize:     "resize",
	EventRedraw:     "redraw",
	EventDPIChanged: "dpi",
	EventKeyDown:    "key_down",
	EventKeyUp:      "key_up",
	EventTextInput:  "text",
	EventMouseMove:  "mouse_move",
	EventMouseDown:  "mouse_down",
	EventMouseUp:    "mouse_up",
	EventMouseWheel: "mouse_wheel",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Event is a raw notification as the backend saw it. Only the fields that
// belong to Type are meaningful.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Scale  float32
	Rune   rune
	DeltaX float64
	DeltaY float64
	X      float64
	Y      float64
	Key    string
	Repeat bool
	// Button numbering follows events.MouseButton: 0 left, 1 right, 2 middle.
	Button int
	Device int
}

type Window interface {
	ID() uuid.UUID
	PollEvents() []Event
	SizePx() (int, int)
	Scale() float32
	SetTitle(title string)
	Close()
}

// Frame is driven once per tick by a backend.
type Frame interface {
	Update(w Window) error
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
	Run(ctx context.Context, w Window, frame Frame) error
}
