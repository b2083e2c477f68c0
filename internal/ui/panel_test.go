package ui

import (
	"testing"

	"strife/internal/render"
)

func TestComputePanelAnchorsTopRight(t *testing.T) {
	theme := DefaultTheme()
	p := ComputePanel(1280, 800, theme, 1, 6)

	if p.X+p.W != 1280-theme.MarginDp {
		t.Fatalf("panel should end at right margin, got x=%d w=%d", p.X, p.W)
	}
	if p.Y != theme.MarginDp {
		t.Fatalf("unexpected top: %d", p.Y)
	}
	if p.Lines != 6 {
		t.Fatalf("expected 6 lines, got %d", p.Lines)
	}
	wantH := theme.PaddingDp*2 + 3 + 6*theme.LineHeightDp
	if p.H != wantH {
		t.Fatalf("expected height %d, got %d", wantH, p.H)
	}
}

func TestComputePanelShrinksInSmallWindow(t *testing.T) {
	theme := DefaultTheme()
	p := ComputePanel(200, 100, theme, 1, 10)

	if p.W != 200-theme.MarginDp*2 {
		t.Fatalf("panel should fill available width, got %d", p.W)
	}
	if p.H > 100-theme.MarginDp*2 {
		t.Fatalf("panel taller than window: %d", p.H)
	}
	if p.Lines >= 10 || p.Lines < 0 {
		t.Fatalf("expected fewer lines, got %d", p.Lines)
	}
}

func TestComputePanelScales(t *testing.T) {
	theme := DefaultTheme()
	p1 := ComputePanel(2000, 2000, theme, 1, 4)
	p2 := ComputePanel(2000, 2000, theme, 2, 4)
	if p2.W != p1.W*2 || p2.LineHeight != p1.LineHeight*2 {
		t.Fatalf("scale 2 should double metrics: %+v vs %+v", p1, p2)
	}
}

func TestDrawPanelPaintsAccent(t *testing.T) {
	theme := DefaultTheme()
	fb := render.NewFrameBuffer(400, 300)
	p := ComputePanel(fb.W, fb.H, theme, 1, 3)
	DrawPanel(fb, p, theme)

	if got := fb.At(p.X+p.W/2, p.Y); got != theme.Accent {
		t.Fatalf("expected accent at panel top, got %v", got)
	}
	if got := fb.At(0, 0); got.A != 0 {
		t.Fatalf("pixels outside panel must stay clear, got %v", got)
	}
}

func TestFontsFaceCached(t *testing.T) {
	f := NewFonts()
	a := f.Face(12, false)
	b := f.Face(12, false)
	if a != b {
		t.Fatal("expected cached face")
	}
	if f.Face(12, true) == a {
		t.Fatal("mono face should differ from regular")
	}
}
