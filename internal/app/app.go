package app

import (
	"context"
	"fmt"
	"log/slog"

	"strife/internal/events"
	"strife/internal/layers"
	"strife/internal/logging"
	"strife/internal/platform"
	"strife/internal/platform/desktop"
	"strife/internal/platform/headless"
	"strife/internal/window"

	"github.com/hajimehoshi/ebiten/v2"
)

// App wires the window adapter, the top-level dispatcher and the layer
// stack. Everything runs on the goroutine that owns the platform loop.
type App struct {
	cfg       Config
	logger    *slog.Logger
	platform  platform.Platform
	clipboard Clipboard

	dispatcher *events.Dispatcher
	stack      *layers.Stack
	adapter    *window.Adapter
	win        platform.Window
	done       <-chan struct{}

	closing bool
	width   int
	height  int
	ticks   uint64
}

type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPlatform overrides the backend picked from Config.Headless.
func WithPlatform(p platform.Platform) Option {
	return func(a *App) { a.platform = p }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func New(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:       cfg,
		logger:    slog.New(slog.DiscardHandler),
		clipboard: systemClipboard{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.platform == nil {
		if cfg.Headless {
			a.platform = headless.New(cfg.Frames)
		} else {
			a.platform = desktop.New()
		}
	}

	core := logging.Core(a.logger)
	a.dispatcher = events.NewDispatcher(events.WithLogger(core))
	a.stack = layers.NewStack(
		layers.WithPropagation(cfg.propagation()),
		layers.WithLogger(core),
	)
	events.Listen(a.dispatcher, a.onWindowClose)
	events.Listen(a.dispatcher, a.onWindowResize)
	events.Listen(a.dispatcher, a.onKeyPressed)
	return a, nil
}

// Run opens the window, pushes the built-in layers and blocks until the
// window closes. Ending ctx closes the window, so layers still see a
// WindowClose and Run returns nil. Layers pushed before Run stay below the
// built-in ones.
func (a *App) Run(ctx context.Context) error {
	win, err := a.platform.CreateWindow(a.cfg.WindowConfig())
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	a.win = win
	a.done = ctx.Done()
	a.width, a.height = win.SizePx()
	a.adapter = window.NewAdapter(win.ID(), a,
		window.WithRawEvents(a.cfg.RawEvents),
		window.WithLogger(logging.Core(a.logger)),
	)

	client := logging.Client(a.logger)
	a.stack.PushLayer(NewWorldLayer(client))
	if a.cfg.ShowStats {
		a.stack.PushOverlay(NewStatsLayer(client, a.stack, a.clipboard, a.width, a.height))
	}
	defer a.stack.Clear()

	a.logger.Info("application started",
		"platform", a.platform.Name(),
		"window", win.ID(),
		"propagation", a.stack.Propagation(),
		"layers", a.stack.Len(),
	)
	if err := a.platform.Run(context.WithoutCancel(ctx), win, a); err != nil {
		return fmt.Errorf("run %s platform: %w", a.platform.Name(), err)
	}
	a.logger.Info("application stopped", "ticks", a.ticks)
	return nil
}

// Update is one host loop tick.
func (a *App) Update(w platform.Window) error {
	select {
	case <-a.done:
		a.logger.Info("context done, closing window")
		w.Close()
	default:
	}
	return a.adapter.Pump(w)
}

// OnEvent offers e to the top-level listeners first. If none of them
// consumes it, the layer stack sees it.
func (a *App) OnEvent(e events.Event) {
	if a.dispatcher.DispatchDynamic(e) {
		return
	}
	a.stack.OnEvent(e)
}

func (a *App) OnUpdate() {
	a.ticks++
	a.stack.Update()
}

// Draw renders layers bottom to top so overlays land on top.
func (a *App) Draw(screen *ebiten.Image) {
	for _, l := range a.stack.Layers() {
		if d, ok := l.(desktop.Drawer); ok {
			d.Draw(screen)
		}
	}
}

func (a *App) PushLayer(l layers.Layer)   { a.stack.PushLayer(l) }
func (a *App) PushOverlay(l layers.Layer) { a.stack.PushOverlay(l) }

func (a *App) Dispatcher() *events.Dispatcher { return a.dispatcher }
func (a *App) Stack() *layers.Stack           { return a.stack }
func (a *App) Closing() bool                  { return a.closing }
func (a *App) Ticks() uint64                  { return a.ticks }

func (a *App) onWindowClose(e events.WindowClose) bool {
	a.closing = true
	a.logger.Info("window closing", "window", e.Window)
	return false
}

func (a *App) onWindowResize(e events.WindowResize) bool {
	a.width, a.height = e.Size()
	a.logger.Debug("window resized", "width", e.Width, "height", e.Height)
	return false
}

// Escape closes the window, mirroring the close button.
func (a *App) onKeyPressed(e events.KeyPressed) bool {
	if e.Key != events.KeyEscape || e.Repeat || a.win == nil {
		return false
	}
	a.win.Close()
	return true
}
