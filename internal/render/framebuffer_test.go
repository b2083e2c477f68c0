package render

import (
	"image/color"
	"testing"
)

func TestFillRectClipsToBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	fb.FillRect(-2, -2, 4, 4, red)

	if got := fb.At(1, 1); got != red {
		t.Fatalf("expected red at (1,1), got %v", got)
	}
	if got := fb.At(2, 2); got != (color.RGBA{}) {
		t.Fatalf("expected untouched pixel at (2,2), got %v", got)
	}
}

func TestBlendRectOverOpaque(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.Clear(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	fb.BlendRect(0, 0, 1, 1, color.RGBA{0, 0, 0, 0x80})

	got := fb.At(0, 0)
	if got.A != 0xFF {
		t.Fatalf("alpha should stay opaque, got %d", got.A)
	}
	if got.R < 0x7E || got.R > 0x80 {
		t.Fatalf("expected roughly half intensity, got %d", got.R)
	}
}

func TestResizeReallocatesOnChange(t *testing.T) {
	fb := NewFrameBuffer(0, -3)
	if fb.W != 1 || fb.H != 1 {
		t.Fatalf("expected 1x1 minimum, got %dx%d", fb.W, fb.H)
	}
	if fb.Resize(1, 1) {
		t.Fatal("same size must not reallocate")
	}
	if !fb.Resize(3, 2) || len(fb.Pixels) != 3*2*4 {
		t.Fatalf("unexpected buffer after resize: %dx%d len=%d", fb.W, fb.H, len(fb.Pixels))
	}
}
