// Package desktop runs the application in a native window through ebiten.
package desktop

import (
	"context"
	"errors"
	"fmt"

	"strife/internal/platform"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Drawer is implemented by frames that render. Draw is called once per
// ebiten frame after Update.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Key repeat timing in ticks, at the default 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn int
}{
	{ebiten.MouseButtonLeft, 0},
	{ebiten.MouseButtonRight, 1},
	{ebiten.MouseButtonMiddle, 2},
	{ebiten.MouseButton3, 3},
	{ebiten.MouseButton4, 4},
}

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "desktop" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	if cfg.WidthPx <= 0 || cfg.HeightPx <= 0 {
		return nil, fmt.Errorf("window %q: invalid size %dx%d", cfg.Title, cfg.WidthPx, cfg.HeightPx)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WidthPx, cfg.HeightPx)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.MinWidthPx > 0 || cfg.MinHeightPx > 0 {
		ebiten.SetWindowSizeLimits(cfg.MinWidthPx, cfg.MinHeightPx, -1, -1)
	}
	ebiten.SetWindowClosingHandled(true)
	return &Window{id: uuid.New(), title: cfg.Title, scale: 1}, nil
}

func (b *Backend) Run(ctx context.Context, w platform.Window, frame platform.Frame) error {
	win, ok := w.(*Window)
	if !ok {
		return fmt.Errorf("desktop backend cannot run window of type %T", w)
	}
	g := &game{ctx: ctx, win: win, frame: frame}
	if d, ok := frame.(Drawer); ok {
		g.drawer = d
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

type game struct {
	ctx    context.Context
	win    *Window
	frame  platform.Frame
	drawer Drawer
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := g.frame.Update(g.win); err != nil {
		if errors.Is(err, platform.ErrClosed) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.drawer != nil {
		g.drawer.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.layout(outsideWidth, outsideHeight)
}

// Window reports ebiten input state as platform events, one batch per tick.
// The screen is laid out in physical pixels, so cursor coordinates are
// physical too.
type Window struct {
	id     uuid.UUID
	title  string
	w      int
	h      int
	scale  float32
	closed bool

	cursorX     int
	cursorY     int
	cursorKnown bool

	pending []platform.Event
	keys    []ebiten.Key
	runes   []rune
}

func (w *Window) layout(outsideWidth, outsideHeight int) (int, int) {
	scale := float32(1)
	if m := ebiten.Monitor(); m != nil {
		scale = float32(m.DeviceScaleFactor())
	}
	if scale <= 0 {
		scale = 1
	}
	pw := int(float32(outsideWidth) * scale)
	ph := int(float32(outsideHeight) * scale)
	if pw != w.w || ph != w.h {
		w.w, w.h = pw, ph
		w.pending = append(w.pending, platform.Event{Type: platform.EventResize, Width: pw, Height: ph, Scale: scale})
	}
	if scale != w.scale {
		w.scale = scale
		w.pending = append(w.pending, platform.Event{Type: platform.EventDPIChanged, Scale: scale})
	}
	return pw, ph
}

func (w *Window) PollEvents() []platform.Event {
	out := w.pending
	w.pending = nil
	if w.closed || ebiten.IsWindowBeingClosed() {
		return append(out, platform.Event{Type: platform.EventClose})
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		out = append(out, platform.Event{Type: platform.EventKeyDown, Key: k.String()})
	}
	w.keys = inpututil.AppendPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if isRepeatTick(inpututil.KeyPressDuration(k)) {
			out = append(out, platform.Event{Type: platform.EventKeyDown, Key: k.String(), Repeat: true})
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		out = append(out, platform.Event{Type: platform.EventKeyUp, Key: k.String()})
	}

	w.runes = ebiten.AppendInputChars(w.runes[:0])
	for _, r := range w.runes {
		out = append(out, platform.Event{Type: platform.EventTextInput, Rune: r})
	}

	x, y := ebiten.CursorPosition()
	if !w.cursorKnown || x != w.cursorX || y != w.cursorY {
		w.cursorX, w.cursorY, w.cursorKnown = x, y, true
		out = append(out, platform.Event{Type: platform.EventMouseMove, X: float64(x), Y: float64(y)})
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			out = append(out, platform.Event{Type: platform.EventMouseDown, Button: mb.btn})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			out = append(out, platform.Event{Type: platform.EventMouseUp, Button: mb.btn})
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		out = append(out, platform.Event{Type: platform.EventMouseWheel, DeltaX: dx, DeltaY: dy})
	}

	return append(out, platform.Event{Type: platform.EventRedraw})
}

// isRepeatTick reports whether a key held for d ticks should emit another
// press. The first tick is the original press, not a repeat.
func isRepeatTick(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (w *Window) ID() uuid.UUID      { return w.id }
func (w *Window) SizePx() (int, int) { return w.w, w.h }
func (w *Window) Scale() float32     { return w.scale }
func (w *Window) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// Close asks the loop to stop at the next tick.
func (w *Window) Close() { w.closed = true }
