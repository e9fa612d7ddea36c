package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"snakecity/internal/game"
)

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func styleOf(c game.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c))
}

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// draw renders the map around the player with the HUD on top.
func draw(s Canvas, g *game.Game, hud *game.HUDState) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	v := NewViewport(w, h, g.Player.Pos)
	ground := tcell.StyleDefault.Foreground(rgb(game.Palette.Ground))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r := ' '
			p := v.World(col, row)
			if math.Abs(p[0]) > g.Settings.HalfExtent || math.Abs(p[2]) > g.Settings.HalfExtent {
				r = '~'
			} else if int(math.Round(p[0]))%5 == 0 && int(math.Round(p[2]/2))%3 == 0 {
				r = '.'
			}
			s.SetContent(col, row, r, nil, ground)
		}
	}

	for i := range g.City.Buildings {
		b := &g.City.Buildings[i]
		glyph := '#'
		switch {
		case b.Bridge:
			glyph = '='
		case b.Collapsed:
			glyph = '%'
		}
		fill(s, v, b.Footprint(), glyph, styleOf(b.Color))
	}
	for i := range g.City.Obstacles {
		o := &g.City.Obstacles[i]
		fill(s, v, o.Footprint(), 'o', styleOf(o.Color))
	}
	for i := range g.PowerUps.Items {
		p := &g.PowerUps.Items[i]
		if p.Alive {
			put(s, v, p.Pos, powerUpGlyph(p.Kind), styleOf(p.Color).Bold(true))
		}
	}
	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if !e.Alive {
			continue
		}
		st := styleOf(e.Color)
		if e.Kind == game.EnemySeeker {
			st = st.Background(rgb(game.Palette.Warning))
		}
		put(s, v, e.Pos, enemyGlyph(e.Kind), st)
	}

	p := g.Player
	for i, seg := range p.Trail.Segments {
		col := game.Palette.Body
		if i%2 == 1 {
			col = game.Palette.BodyAlt
		}
		put(s, v, seg.Pos, 'o', styleOf(col))
	}
	head := styleOf(p.HeadColor()).Bold(true)
	if p.Airborne || p.IsCrossing() {
		head = head.Underline(true)
	}
	put(s, v, p.Pos, headGlyph(p.Yaw), head)

	drawHUD(s, hud.Lines(), w, h)
}

func fill(s Canvas, v Viewport, r game.RectF, glyph rune, st tcell.Style) {
	c0, r0, c1, r1, ok := v.CellRect(r)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.SetContent(col, row, glyph, nil, st)
		}
	}
}

func put(s Canvas, v Viewport, p game.Vec3, glyph rune, st tcell.Style) {
	if col, row, ok := v.Cell(p); ok {
		s.SetContent(col, row, glyph, nil, st)
	}
}

func drawHUD(s Canvas, lines []game.HUDLine, w, h int) {
	var left, right, center, bottom int
	var nCenter int
	for _, l := range lines {
		if l.Anchor == game.AnchorCenter {
			nCenter++
		}
	}
	for _, l := range lines {
		st := styleOf(l.Col).Background(tcell.ColorBlack)
		n := len([]rune(l.Text))
		switch l.Anchor {
		case game.AnchorTopRight:
			text(s, w-n-1, right, l.Text, st)
			right++
		case game.AnchorCenter:
			text(s, (w-n)/2, h/2-nCenter/2+center, l.Text, st.Bold(true))
			center++
		case game.AnchorBottom:
			text(s, (w-n)/2, h-1-bottom, l.Text, st)
			bottom++
		default:
			text(s, 1, left, l.Text, st)
			left++
		}
	}
}

func text(s Canvas, x, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
