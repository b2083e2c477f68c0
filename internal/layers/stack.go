package layers

import (
	"log/slog"
	"slices"

	"strife/internal/events"
)

// Stack keeps normal layers in [0, insert) and overlays in [insert, len).
// Traversal for updates and events runs from the top (last overlay) down to
// the oldest normal layer.
type Stack struct {
	layers      []Layer
	insert      int
	propagation Propagation
	logger      *slog.Logger
}

type StackOption func(*Stack)

func WithPropagation(p Propagation) StackOption {
	return func(s *Stack) { s.propagation = p }
}

func WithLogger(l *slog.Logger) StackOption {
	return func(s *Stack) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStack(opts ...StackOption) *Stack {
	s := &Stack{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PushLayer inserts l above every normal layer and below every overlay.
func (s *Stack) PushLayer(l Layer) {
	s.layers = slices.Insert(s.layers, s.insert, l)
	s.insert++
	s.logger.Debug("layer pushed", "layer", l.Name(), "index", s.insert-1)
	l.OnAttach()
}

// PushOverlay puts l on top of the stack.
func (s *Stack) PushOverlay(l Layer) {
	s.layers = append(s.layers, l)
	s.logger.Debug("overlay pushed", "layer", l.Name(), "index", len(s.layers)-1)
	l.OnAttach()
}

// PopLayer detaches and returns the most recently pushed normal layer. It
// returns false when the stack holds no normal layer, overlays included.
func (s *Stack) PopLayer() (Layer, bool) {
	if s.insert == 0 {
		return nil, false
	}
	s.insert--
	l := s.layers[s.insert]
	s.layers = slices.Delete(s.layers, s.insert, s.insert+1)
	s.logger.Debug("layer popped", "layer", l.Name())
	l.OnDetach()
	return l, true
}

// PopOverlay detaches and returns the topmost overlay.
func (s *Stack) PopOverlay() (Layer, bool) {
	if len(s.layers) == s.insert {
		return nil, false
	}
	last := len(s.layers) - 1
	l := s.layers[last]
	s.layers[last] = nil
	s.layers = s.layers[:last]
	s.logger.Debug("overlay popped", "layer", l.Name())
	l.OnDetach()
	return l, true
}

// OnEvent offers e to the layers top-down and reports whether any layer
// consumed it.
func (s *Stack) OnEvent(e events.Event) bool {
	consumed := false
	for i := len(s.layers) - 1; i >= 0; i-- {
		if !s.layers[i].OnEvent(e) {
			continue
		}
		consumed = true
		if s.propagation == StopOnConsume {
			s.logger.Debug("event stopped", "event", e.Name(), "layer", s.layers[i].Name())
			break
		}
	}
	return consumed
}

// Update runs one frame of OnUpdate, top-down.
func (s *Stack) Update() {
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].OnUpdate()
	}
}

// Clear detaches every layer, top-down, and empties the stack.
func (s *Stack) Clear() {
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].OnDetach()
	}
	clear(s.layers)
	s.layers = s.layers[:0]
	s.insert = 0
}

// Layers returns the layers bottom to top.
func (s *Stack) Layers() []Layer {
	return slices.Clone(s.layers)
}

func (s *Stack) Len() int { return len(s.layers) }

// Boundary is the index of the first overlay.
func (s *Stack) Boundary() int { return s.insert }

func (s *Stack) Propagation() Propagation { return s.propagation }
