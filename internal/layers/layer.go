// Package layers drives per-frame updates and input through an ordered stack
// of application modules.
package layers

import "strife/internal/events"

// Layer is an independently updated module. OnAttach and OnDetach run once
// when the layer enters and leaves a Stack; OnUpdate and OnEvent are only
// called in between. OnEvent reports whether the layer consumed the event,
// which matters only under StopOnConsume.
type Layer interface {
	Name() string
	OnAttach()
	OnDetach()
	OnUpdate()
	OnEvent(e events.Event) bool
}

// Propagation decides whether a consuming layer hides an event from the
// layers below it.
type Propagation int

const (
	// PropagateAll offers every event to every layer.
	PropagateAll Propagation = iota
	// StopOnConsume stops at the first layer whose OnEvent returns true.
	StopOnConsume
)

func (p Propagation) String() string {
	switch p {
	case PropagateAll:
		return "all"
	case StopOnConsume:
		return "stop"
	default:
		return "unknown"
	}
}

func ParsePropagation(s string) (Propagation, bool) {
	switch s {
	case "all":
		return PropagateAll, true
	case "stop":
		return StopOnConsume, true
	}
	return PropagateAll, false
}
