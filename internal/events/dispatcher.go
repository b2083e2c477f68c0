package events

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"strife/internal/logging"
)

// Listener consumes payloads of a single concrete type. Handle returns true
// when later listeners for the same type must not see the event.
type Listener[E Event] interface {
	Handle(e E) bool
}

type ListenerFunc[E Event] func(e E) bool

func (f ListenerFunc[E]) Handle(e E) bool { return f(e) }

type erased interface {
	handleErased(e Event) bool
}

type adapter[E Event] struct {
	listener Listener[E]
}

func (a adapter[E]) handleErased(e Event) bool {
	typed, ok := e.(E)
	if !ok {
		return false
	}
	return a.listener.Handle(typed)
}

// Dispatcher keeps one listener chain per payload type. Chains keep
// registration order and dispatch stops at the first listener that consumes
// the event. A Dispatcher is owned by a single goroutine.
type Dispatcher struct {
	chains map[reflect.Type][]erased
	logger *slog.Logger
}

type Option func(*Dispatcher)

// WithLogger traces every dispatch at logging.LevelTrace.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		chains: make(map[reflect.Type][]erased),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddListener appends l to the chain for E. Registering the same listener
// twice gives it two slots. E must be a concrete payload type.
func AddListener[E Event](d *Dispatcher, l Listener[E]) {
	t := TypeFor[E]()
	if t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("events: listener bound to interface type %s never matches a payload", t))
	}
	d.chains[t] = append(d.chains[t], adapter[E]{listener: l})
}

// Listen registers fn as a listener for E.
func Listen[E Event](d *Dispatcher, fn func(e E) bool) {
	AddListener[E](d, ListenerFunc[E](fn))
}

// Dispatch is the typed entry point. It reports whether a listener
// consumed e.
func Dispatch[E Event](d *Dispatcher, e E) bool {
	return d.DispatchDynamic(e)
}

// DispatchDynamic routes e by its dynamic type. Payloads without a chain are
// dropped silently. Listener panics are not recovered.
func (d *Dispatcher) DispatchDynamic(e Event) bool {
	if e == nil {
		return false
	}
	chain, ok := d.chains[TypeOf(e)]
	if !ok {
		return false
	}
	d.logger.Log(context.Background(), logging.LevelTrace, "dispatch", "event", e.String(), "listeners", len(chain))
	for i, l := range chain {
		if l.handleErased(e) {
			d.logger.Log(context.Background(), logging.LevelTrace, "event consumed", "event", e.Name(), "listener", i)
			return true
		}
	}
	return false
}

func (d *Dispatcher) ListenerCount(t reflect.Type) int {
	return len(d.chains[t])
}

func (d *Dispatcher) HasListeners(t reflect.Type) bool {
	return len(d.chains[t]) > 0
}

// Types returns the number of payload types with a chain.
func (d *Dispatcher) Types() int {
	return len(d.chains)
}
