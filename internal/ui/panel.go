package ui

import "strife/internal/render"

// Panel is the stats overlay geometry in physical pixels.
type Panel struct {
	X, Y, W, H int
	Padding    int
	LineHeight int
	AccentH    int
	// Lines is how many text lines fit.
	Lines int
}

// TextOrigin returns the baseline position of line i.
func (p Panel) TextOrigin(i int) (int, int) {
	return p.X + p.Padding, p.Y + p.Padding + p.AccentH + (i+1)*p.LineHeight - p.LineHeight/4
}

// ComputePanel anchors the panel to the top-right corner of a w x h window,
// sized for wantLines of text and clamped to the window.
func ComputePanel(w, h int, theme Theme, scale float32, wantLines int) Panel {
	if scale <= 0 {
		scale = 1
	}
	dp := func(v int) int { return int(float32(v) * scale) }

	margin := dp(theme.MarginDp)
	pad := dp(theme.PaddingDp)
	lineH := dp(theme.LineHeightDp)
	accentH := dp(3)
	if accentH < 1 {
		accentH = 1
	}

	panelW := dp(theme.PanelWidthDp)
	if maxW := w - margin*2; panelW > maxW {
		panelW = maxW
	}
	if panelW < 0 {
		panelW = 0
	}

	lines := wantLines
	maxH := h - margin*2
	for lines > 0 && pad*2+accentH+lines*lineH > maxH {
		lines--
	}
	panelH := pad*2 + accentH + lines*lineH
	if panelH > maxH {
		panelH = maxH
	}
	if panelH < 0 {
		panelH = 0
	}

	return Panel{
		X:          w - margin - panelW,
		Y:          margin,
		W:          panelW,
		H:          panelH,
		Padding:    pad,
		LineHeight: lineH,
		AccentH:    accentH,
		Lines:      lines,
	}
}

// DrawPanel paints the panel chrome into fb. Text is drawn separately on
// the GPU image.
func DrawPanel(fb *render.FrameBuffer, p Panel, theme Theme) {
	if p.W <= 0 || p.H <= 0 {
		return
	}
	fb.BlendRect(p.X+2, p.Y+2, p.W, p.H, theme.Shadow)
	fb.BlendRect(p.X, p.Y, p.W, p.H, theme.PanelBackground)
	fb.StrokeRect(p.X, p.Y, p.W, p.H, 1, theme.PanelBorder)

	// Accent line at top of the panel as a visual anchor.
	fb.FillRect(p.X, p.Y, p.W, p.AccentH, theme.Accent)
}
