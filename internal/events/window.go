package events

import "fmt"

// WindowResize carries the new client size in physical pixels.
type WindowResize struct {
	header
	Window WindowID
	Width  int
	Height int
}

func NewWindowResize(id WindowID, width, height int) WindowResize {
	return WindowResize{header: header{name: "WindowResizeEvent"}, Window: id, Width: width, Height: height}
}

func (e WindowResize) Size() (int, int) { return e.Width, e.Height }

func (e WindowResize) String() string {
	return fmt.Sprintf("%s: width - %d, height - %d", e.name, e.Width, e.Height)
}

type WindowClose struct {
	header
	Window WindowID
}

func NewWindowClose(id WindowID) WindowClose {
	return WindowClose{header: header{name: "WindowCloseEvent"}, Window: id}
}

// WindowRedrawRequested is the per-frame tick. The window adapter turns it
// into an update pass instead of dispatching it.
type WindowRedrawRequested struct {
	header
	Window WindowID
}

func NewWindowRedrawRequested(id WindowID) WindowRedrawRequested {
	return WindowRedrawRequested{header: header{name: "WindowRedrawRequestedEvent"}, Window: id}
}
