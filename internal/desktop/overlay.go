package desktop

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"snakecity/internal/game"
)

const (
	overlayScale = 2 // screen pixels per overlay pixel
	overlayPad   = 6
)

var hudFace = basicfont.Face7x13

// Overlay rasterizes HUD lines and only redraws when they change.
type Overlay struct {
	img *image.RGBA
	key string
}

// Update lays out lines for a framebuffer of fbW by fbH and reports whether
// the image changed.
func (o *Overlay) Update(lines []game.HUDLine, fbW, fbH int) bool {
	w, h := max(fbW/overlayScale, 1), max(fbH/overlayScale, 1)
	key := overlayKey(lines, w, h)
	if o.img != nil && key == o.key {
		return false
	}
	o.key = key
	o.img = layoutHUD(lines, w, h)
	return true
}

func (o *Overlay) Image() *image.RGBA { return o.img }

func overlayKey(lines []game.HUDLine, w, h int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", w, h)
	for _, l := range lines {
		fmt.Fprintf(&b, "|%d%v%s", l.Anchor, l.Col, l.Text)
	}
	return b.String()
}

// layoutHUD draws lines onto a transparent w by h image, stacking each
// anchor's lines in order.
func layoutHUD(lines []game.HUDLine, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	m := hudFace.Metrics()
	lineH := m.Height.Ceil() + 2
	ascent := m.Ascent.Ceil()

	var left, right, center, bottom []game.HUDLine
	for _, l := range lines {
		switch l.Anchor {
		case game.AnchorTopRight:
			right = append(right, l)
		case game.AnchorCenter:
			center = append(center, l)
		case game.AnchorBottom:
			bottom = append(bottom, l)
		default:
			left = append(left, l)
		}
	}

	for i, l := range left {
		drawText(img, l, overlayPad, overlayPad+ascent+i*lineH)
	}
	for i, l := range right {
		drawText(img, l, w-overlayPad-textWidth(l.Text), overlayPad+ascent+i*lineH)
	}
	top := h/2 - len(center)*lineH/2
	for i, l := range center {
		drawText(img, l, (w-textWidth(l.Text))/2, top+ascent+i*lineH)
	}
	base := h - overlayPad - len(bottom)*lineH
	for i, l := range bottom {
		drawText(img, l, (w-textWidth(l.Text))/2, base+ascent+i*lineH)
	}
	return img
}

func textWidth(s string) int {
	return font.MeasureString(hudFace, s).Ceil()
}

// drawText writes l with its baseline at y and a one pixel drop shadow.
func drawText(img *image.RGBA, l game.HUDLine, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{A: 200}),
		Face: hudFace,
		Dot:  fixed.P(x+1, y+1),
	}
	d.DrawString(l.Text)
	d.Src = image.NewUniform(color.RGBA{R: l.Col.R, G: l.Col.G, B: l.Col.B, A: 255})
	d.Dot = fixed.P(x, y)
	d.DrawString(l.Text)
}
