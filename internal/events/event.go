// Package events holds the payloads produced by the window adapter and the
// dispatcher that routes them to typed listeners.
package events

import (
	"reflect"

	"github.com/google/uuid"
)

// Event is the capability set every payload implements. Payloads are
// immutable values: they are built once by the window adapter, handed
// through the pipeline synchronously and then dropped.
type Event interface {
	Name() string
	String() string
	Handled() bool
}

// WindowID identifies the window a payload originated from.
type WindowID = uuid.UUID

// DeviceID identifies an input device. Zero is the system pointer.
type DeviceID int

// header carries the fields shared by every payload. String defaults to the
// name; payloads with data override it.
type header struct {
	name    string
	handled bool
}

func (h header) Name() string   { return h.name }
func (h header) String() string { return h.name }
func (h header) Handled() bool  { return h.handled }

// TypeOf returns the routing identity of e.
func TypeOf(e Event) reflect.Type {
	return reflect.TypeOf(e)
}

// TypeFor returns the routing identity of payloads of type E.
func TypeFor[E Event]() reflect.Type {
	return reflect.TypeFor[E]()
}
