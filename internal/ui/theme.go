package ui

import "image/color"

// Theme holds the overlay colors and metrics in device-independent units.
type Theme struct {
	PanelBackground color.RGBA
	PanelBorder     color.RGBA
	Accent          color.RGBA
	Shadow          color.RGBA
	Text            color.RGBA
	TextDim         color.RGBA
	PanelWidthDp    int
	LineHeightDp    int
	PaddingDp       int
	MarginDp        int
	FontSizeDp      int
}

func DefaultTheme() Theme {
	return Theme{
		PanelBackground: color.RGBA{0x16, 0x1B, 0x26, 0xD8},
		PanelBorder:     color.RGBA{0x3A, 0x4A, 0x63, 0xFF},
		Accent:          color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Shadow:          color.RGBA{0x00, 0x00, 0x00, 0x50},
		Text:            color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		TextDim:         color.RGBA{0x9A, 0xA8, 0xBC, 0xFF},
		PanelWidthDp:    360,
		LineHeightDp:    18,
		PaddingDp:       10,
		MarginDp:        12,
		FontSizeDp:      12,
	}
}
