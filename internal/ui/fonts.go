package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches faces per pixel size. Without parsed fonts it falls back to
// basicfont.
type Fonts struct {
	regular *opentype.Font
	mono    *opentype.Font
	cache   map[fontKey]font.Face
}

type fontKey struct {
	size int
	mono bool
}

func NewFonts() *Fonts {
	f := &Fonts{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return f
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return f
	}
	f.regular = reg
	f.mono = mono
	return f
}

func (f *Fonts) Face(size int, mono bool) font.Face {
	if size < 6 {
		size = 6
	}
	key := fontKey{size: size, mono: mono}
	if face, ok := f.cache[key]; ok {
		return face
	}
	src := f.regular
	if mono {
		src = f.mono
	}
	if src == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.cache[key] = face
	return face
}
