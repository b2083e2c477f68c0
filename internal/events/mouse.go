package events

import (
	"fmt"
	"strconv"
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	default:
		return "button " + strconv.Itoa(int(b))
	}
}

// MouseMove carries the absolute cursor position in physical pixels.
type MouseMove struct {
	header
	Device DeviceID
	X      float64
	Y      float64
}

func NewMouseMove(device DeviceID, x, y float64) MouseMove {
	return MouseMove{header: header{name: "MouseMoveEvent"}, Device: device, X: x, Y: y}
}

func (e MouseMove) Pos() (float64, float64) { return e.X, e.Y }

func (e MouseMove) String() string {
	return fmt.Sprintf("%s: x - %g, y - %g", e.name, e.X, e.Y)
}

type MouseButtonPressed struct {
	header
	Device DeviceID
	Button MouseButton
}

func NewMouseButtonPressed(device DeviceID, button MouseButton) MouseButtonPressed {
	return MouseButtonPressed{header: header{name: "MouseButtonPressedEvent"}, Device: device, Button: button}
}

func (e MouseButtonPressed) String() string {
	return fmt.Sprintf("%s: button - %s", e.name, e.Button)
}

type MouseButtonReleased struct {
	header
	Device DeviceID
	Button MouseButton
}

func NewMouseButtonReleased(device DeviceID, button MouseButton) MouseButtonReleased {
	return MouseButtonReleased{header: header{name: "MouseButtonReleasedEvent"}, Device: device, Button: button}
}

func (e MouseButtonReleased) String() string {
	return fmt.Sprintf("%s: button - %s", e.name, e.Button)
}
