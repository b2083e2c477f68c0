package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"strife/internal/events"
	"strife/internal/platform"
	"strife/internal/render"
	"strife/internal/ui"
	"strife/internal/window"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const statsRecentEvents = 6

var colorTransparent = color.RGBA{}

// StackInfo is the part of the layer stack the overlay reports on.
type StackInfo interface {
	Len() int
	Boundary() int
}

// StatsLayer is the debug overlay: frame rate, window size, stack shape and
// the most recent events. F1 toggles it; Ctrl+Shift+C copies the event log.
type StatsLayer struct {
	logger     *slog.Logger
	dispatcher *events.Dispatcher
	stack      StackInfo
	clipboard  Clipboard
	now        func() time.Time

	visible bool
	width   int
	height  int
	scale   float32
	ctrl    map[events.KeyCode]bool
	shift   map[events.KeyCode]bool

	lastFPSCheck time.Time
	lastFrame    time.Time
	frames       uint64
	fps          uint64
	maxFrame     time.Duration
	shownMax     time.Duration

	recent []string
	text   []rune

	theme  ui.Theme
	fonts  *ui.Fonts
	fb     *render.FrameBuffer
	canvas *ebiten.Image
}

func NewStatsLayer(logger *slog.Logger, stack StackInfo, cb Clipboard, width, height int) *StatsLayer {
	l := &StatsLayer{
		logger:     logger,
		dispatcher: events.NewDispatcher(events.WithLogger(logger)),
		stack:      stack,
		clipboard:  cb,
		now:        time.Now,
		visible:    true,
		width:      width,
		height:     height,
		scale:      1,
		ctrl:       map[events.KeyCode]bool{},
		shift:      map[events.KeyCode]bool{},
		theme:      ui.DefaultTheme(),
	}
	events.Listen(l.dispatcher, l.onResize)
	events.Listen(l.dispatcher, l.onKeyPressed)
	events.Listen(l.dispatcher, l.onKeyReleased)
	events.Listen(l.dispatcher, l.onRaw)
	return l
}

func (l *StatsLayer) Name() string { return "stats" }

func (l *StatsLayer) OnAttach() {
	now := l.now()
	l.lastFPSCheck, l.lastFrame = now, now
	l.logger.Debug("layer attached", "layer", l.Name())
}

func (l *StatsLayer) OnDetach() {
	l.logger.Debug("layer detached", "layer", l.Name())
}

// OnUpdate counts frames and publishes the rate once per second, together
// with the longest frame seen in that second.
func (l *StatsLayer) OnUpdate() {
	l.frames++
	now := l.now()
	if d := now.Sub(l.lastFrame); d > l.maxFrame {
		l.maxFrame = d
	}
	if now.Sub(l.lastFPSCheck) >= time.Second {
		l.fps = l.frames
		l.shownMax = l.maxFrame
		l.frames = 0
		l.maxFrame = 0
		l.lastFPSCheck = now
	}
	l.lastFrame = now
}

func (l *StatsLayer) OnEvent(e events.Event) bool {
	if _, raw := e.(window.RawEvent); !raw {
		l.remember(e.String())
	}
	return l.dispatcher.DispatchDynamic(e)
}

func (l *StatsLayer) remember(s string) {
	if len(l.recent) == statsRecentEvents {
		copy(l.recent, l.recent[1:])
		l.recent = l.recent[:statsRecentEvents-1]
	}
	l.recent = append(l.recent, s)
}

func (l *StatsLayer) onResize(e events.WindowResize) bool {
	l.width, l.height = e.Size()
	return false
}

func (l *StatsLayer) onKeyPressed(e events.KeyPressed) bool {
	switch {
	case e.Key.IsControl():
		l.ctrl[e.Key] = true
		return false
	case e.Key.IsShift():
		l.shift[e.Key] = true
		return false
	case e.Key == events.KeyF1 && !e.Repeat:
		l.visible = !l.visible
		return true
	case e.Key == events.KeyC && len(l.ctrl) > 0 && len(l.shift) > 0:
		if err := l.clipboard.WriteAll(l.EventLog()); err != nil {
			l.logger.Warn("copy event log failed", "err", err)
		}
		return true
	}
	return false
}

func (l *StatsLayer) onKeyReleased(e events.KeyReleased) bool {
	delete(l.ctrl, e.Key)
	delete(l.shift, e.Key)
	return false
}

// Typed runes and DPI changes only arrive as raw platform events.
func (l *StatsLayer) onRaw(e window.RawEvent) bool {
	switch e.Event.Type {
	case platform.EventDPIChanged:
		if e.Event.Scale > 0 {
			l.scale = e.Event.Scale
		}
	case platform.EventTextInput:
		l.text = append(l.text, e.Event.Rune)
		if n := len(l.text); n > 16 {
			l.text = l.text[n-16:]
		}
	}
	return false
}

// EventLog returns the recent events, oldest first, one per line.
func (l *StatsLayer) EventLog() string {
	return strings.Join(l.recent, "\n")
}

func (l *StatsLayer) Visible() bool { return l.visible }
func (l *StatsLayer) FPS() uint64   { return l.fps }

func (l *StatsLayer) lines() []string {
	out := []string{
		fmt.Sprintf("FPS: %d", l.fps),
		fmt.Sprintf("MAX: %s", l.shownMax.Round(time.Microsecond)),
		fmt.Sprintf("Window: %dx%d @%.2gx", l.width, l.height, l.scale),
		fmt.Sprintf("Layers: %d (overlays %d)", l.stack.Len(), l.stack.Len()-l.stack.Boundary()),
	}
	if len(l.text) > 0 {
		out = append(out, "Typed: "+string(l.text))
	}
	for i := len(l.recent) - 1; i >= 0; i-- {
		out = append(out, l.recent[i])
	}
	return out
}

func (l *StatsLayer) Draw(screen *ebiten.Image) {
	if !l.visible {
		return
	}
	if l.fonts == nil {
		l.fonts = ui.NewFonts()
	}
	b := screen.Bounds()
	lines := l.lines()
	panel := ui.ComputePanel(b.Dx(), b.Dy(), l.theme, l.scale, len(lines))
	if panel.W <= 0 || panel.H <= 0 {
		return
	}

	local := panel
	local.X, local.Y = 0, 0
	if l.fb == nil {
		l.fb = render.NewFrameBuffer(panel.W+2, panel.H+2)
	}
	if l.fb.Resize(panel.W+2, panel.H+2) || l.canvas == nil {
		if l.canvas != nil {
			l.canvas.Deallocate()
		}
		l.canvas = ebiten.NewImage(l.fb.W, l.fb.H)
	}
	l.fb.Clear(colorTransparent)
	ui.DrawPanel(l.fb, local, l.theme)
	l.canvas.WritePixels(l.fb.Pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panel.X), float64(panel.Y))
	screen.DrawImage(l.canvas, op)

	face := l.fonts.Face(int(float32(l.theme.FontSizeDp)*l.scale), true)
	for i := 0; i < panel.Lines && i < len(lines); i++ {
		x, y := panel.TextOrigin(i)
		c := l.theme.Text
		if i >= 4 {
			c = l.theme.TextDim
		}
		text.Draw(screen, lines[i], face, x, y, c)
	}
}
