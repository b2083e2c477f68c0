package app

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"strife/internal/events"

	"github.com/hajimehoshi/ebiten/v2"
)

// Triangle in normalized coordinates, y up.
var worldTriangle = [3][2]float64{{0, 0.5}, {-0.5, -0.5}, {0.5, -0.5}}

var worldPalette = []color.RGBA{
	{0xE6, 0x7E, 0x22, 0xFF},
	{0x2B, 0x57, 0x9A, 0xFF},
	{0x11, 0x7A, 0x37, 0xFF},
	{0xA3, 0x15, 0x15, 0xFF},
}

const (
	worldSpin = math.Pi / 180
	worldStep = 0.05
)

// WorldLayer renders the scene: a spinning triangle that arrow keys nudge
// and Space recolors. Input goes through the layer's own dispatcher.
type WorldLayer struct {
	logger     *slog.Logger
	dispatcher *events.Dispatcher

	angle    float64
	offsetX  float64
	offsetY  float64
	colorIdx int
	paused   bool
	cursorX  float64
	cursorY  float64

	white    *ebiten.Image
	vertices []ebiten.Vertex
}

func NewWorldLayer(logger *slog.Logger) *WorldLayer {
	l := &WorldLayer{
		logger:     logger,
		dispatcher: events.NewDispatcher(events.WithLogger(logger)),
	}
	events.Listen(l.dispatcher, l.onKey)
	events.Listen(l.dispatcher, l.onMouseMove)
	events.Listen(l.dispatcher, l.onMouseButton)
	return l
}

func (l *WorldLayer) Name() string { return "world" }

func (l *WorldLayer) OnAttach() { l.logger.Debug("layer attached", "layer", l.Name()) }
func (l *WorldLayer) OnDetach() { l.logger.Debug("layer detached", "layer", l.Name()) }

func (l *WorldLayer) OnUpdate() {
	if l.paused {
		return
	}
	l.angle = math.Mod(l.angle+worldSpin, 2*math.Pi)
}

func (l *WorldLayer) OnEvent(e events.Event) bool {
	return l.dispatcher.DispatchDynamic(e)
}

func (l *WorldLayer) onKey(e events.KeyPressed) bool {
	switch e.Key {
	case events.KeyArrowLeft:
		l.offsetX -= worldStep
	case events.KeyArrowRight:
		l.offsetX += worldStep
	case events.KeyArrowUp:
		l.offsetY += worldStep
	case events.KeyArrowDown:
		l.offsetY -= worldStep
	case events.KeySpace:
		if e.Repeat {
			return false
		}
		l.colorIdx = (l.colorIdx + 1) % len(worldPalette)
	case events.KeyR:
		l.angle, l.offsetX, l.offsetY = 0, 0, 0
	default:
		return false
	}
	return true
}

func (l *WorldLayer) onMouseMove(e events.MouseMove) bool {
	l.cursorX, l.cursorY = e.Pos()
	return false
}

// Right click toggles the spin.
func (l *WorldLayer) onMouseButton(e events.MouseButtonPressed) bool {
	if e.Button != events.MouseButtonRight {
		return false
	}
	l.paused = !l.paused
	return true
}

// points maps the triangle to screen space for a w x h target.
func (l *WorldLayer) points(w, h int) [3][2]float32 {
	size := float64(min(w, h)) / 2
	cx := float64(w)/2 + l.offsetX*size
	cy := float64(h)/2 - l.offsetY*size
	sin, cos := math.Sincos(l.angle)
	var out [3][2]float32
	for i, p := range worldTriangle {
		x := p[0]*cos - p[1]*sin
		y := p[0]*sin + p[1]*cos
		out[i] = [2]float32{float32(cx + x*size), float32(cy - y*size)}
	}
	return out
}

func (l *WorldLayer) Draw(screen *ebiten.Image) {
	if l.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		l.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	b := screen.Bounds()
	pts := l.points(b.Dx(), b.Dy())
	c := worldPalette[l.colorIdx]
	r, g, bl, a := float32(c.R)/0xFF, float32(c.G)/0xFF, float32(c.B)/0xFF, float32(c.A)/0xFF

	l.vertices = l.vertices[:0]
	for _, p := range pts {
		l.vertices = append(l.vertices, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
		})
	}
	screen.DrawTriangles(l.vertices, []uint16{0, 1, 2}, l.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
