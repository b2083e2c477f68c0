// Package render holds CPU-side drawing buffers that layers upload to the
// GPU once per frame.
package render

import "image/color"

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA, premultiplied
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates only when the size changes. Contents are undefined
// afterwards.
func (fb *FrameBuffer) Resize(w, h int) bool {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if fb.W == w && fb.H == h && fb.Pixels != nil {
		return false
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
	return true
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

// clip trims the rectangle to the buffer and reports whether anything is
// left.
func (fb *FrameBuffer) clip(x, y, w, h int) (int, int, int, int, bool) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	return x, y, w, h, w > 0 && h > 0
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	x, y, w, h, ok := fb.clip(x, y, w, h)
	if !ok {
		return
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

// BlendRect draws c over the existing pixels (source-over, premultiplied).
func (fb *FrameBuffer) BlendRect(x, y, w, h int, c color.RGBA) {
	if c.A == 0xFF {
		fb.FillRect(x, y, w, h, c)
		return
	}
	x, y, w, h, ok := fb.clip(x, y, w, h)
	if !ok {
		return
	}
	inv := 255 - uint32(c.A)
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = uint8(uint32(c.R) + uint32(fb.Pixels[idx+0])*inv/255)
			fb.Pixels[idx+1] = uint8(uint32(c.G) + uint32(fb.Pixels[idx+1])*inv/255)
			fb.Pixels[idx+2] = uint8(uint32(c.B) + uint32(fb.Pixels[idx+2])*inv/255)
			fb.Pixels[idx+3] = uint8(uint32(c.A) + uint32(fb.Pixels[idx+3])*inv/255)
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2], fb.Pixels[i+3]}
}
