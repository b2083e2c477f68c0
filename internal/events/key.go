package events

import "fmt"

// KeyCode is the platform-independent name of a physical key, e.g. "A",
// "ArrowLeft" or "F1".
type KeyCode string

const (
	KeyEscape       KeyCode = "Escape"
	KeySpace        KeyCode = "Space"
	KeyEnter        KeyCode = "Enter"
	KeyF1           KeyCode = "F1"
	KeyC            KeyCode = "C"
	KeyR            KeyCode = "R"
	KeyArrowLeft    KeyCode = "ArrowLeft"
	KeyArrowRight   KeyCode = "ArrowRight"
	KeyArrowUp      KeyCode = "ArrowUp"
	KeyArrowDown    KeyCode = "ArrowDown"
	KeyControlLeft  KeyCode = "ControlLeft"
	KeyControlRight KeyCode = "ControlRight"
	KeyShiftLeft    KeyCode = "ShiftLeft"
	KeyShiftRight   KeyCode = "ShiftRight"
	KeyMetaLeft     KeyCode = "MetaLeft"
	KeyMetaRight    KeyCode = "MetaRight"
)

func (k KeyCode) IsControl() bool {
	return k == KeyControlLeft || k == KeyControlRight || k == KeyMetaLeft || k == KeyMetaRight
}

func (k KeyCode) IsShift() bool {
	return k == KeyShiftLeft || k == KeyShiftRight
}

type KeyPressed struct {
	header
	Key    KeyCode
	Repeat bool
}

func NewKeyPressed(key KeyCode, repeat bool) KeyPressed {
	return KeyPressed{header: header{name: "KeyPressedEvent"}, Key: key, Repeat: repeat}
}

func (e KeyPressed) String() string {
	return fmt.Sprintf("%s: key - %s, repeat - %t", e.name, e.Key, e.Repeat)
}

type KeyReleased struct {
	header
	Key KeyCode
}

func NewKeyReleased(key KeyCode) KeyReleased {
	return KeyReleased{header: header{name: "KeyReleasedEvent"}, Key: key}
}

func (e KeyReleased) String() string {
	return fmt.Sprintf("%s: key - %s", e.name, e.Key)
}
