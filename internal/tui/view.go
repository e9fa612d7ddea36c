package tui

import (
	"math"

	"snakecity/internal/game"
)

// Viewport maps the ground plane onto terminal cells, centred on a point.
// Screen up is +Z and screen right is +X, so the player's right stays on
// the right when facing up.
type Viewport struct {
	W, H   int
	Center game.Vec3
	ScaleX float64 // world units per column
	ScaleZ float64 // world units per row
}

func NewViewport(w, h int, center game.Vec3) Viewport {
	// Terminal cells are about twice as tall as they are wide.
	return Viewport{W: w, H: h, Center: center, ScaleX: 1, ScaleZ: 2}
}

// Cell returns the column and row for p and whether it is on screen.
func (v Viewport) Cell(p game.Vec3) (col, row int, ok bool) {
	col = v.W/2 + int(math.Floor((p[0]-v.Center[0])/v.ScaleX+0.5))
	row = v.H/2 - int(math.Floor((p[2]-v.Center[2])/v.ScaleZ+0.5))
	return col, row, col >= 0 && col < v.W && row >= 0 && row < v.H
}

// World returns the ground point at the centre of a cell.
func (v Viewport) World(col, row int) game.Vec3 {
	return game.Vec3{
		v.Center[0] + float64(col-v.W/2)*v.ScaleX,
		0,
		v.Center[2] - float64(row-v.H/2)*v.ScaleZ,
	}
}

// CellRect returns the clipped cell range covering a ground rectangle,
// inclusive on both ends. ok is false when nothing is visible.
func (v Viewport) CellRect(r game.RectF) (c0, r0, c1, r1 int, ok bool) {
	c0, r1, _ = v.Cell(game.Vec3{r.X0, 0, r.Z0})
	c1, r0, _ = v.Cell(game.Vec3{r.X1, 0, r.Z1})
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, v.W-1), min(r1, v.H-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

// headGlyph points along yaw in screen terms.
func headGlyph(yaw float64) rune {
	f := game.ForwardFromYaw(yaw)
	if math.Abs(f[0]) > math.Abs(f[2]) {
		if f[0] > 0 {
			return '>'
		}
		return '<'
	}
	if f[2] > 0 {
		return '^'
	}
	return 'v'
}

func enemyGlyph(k game.EnemyKind) rune {
	switch k {
	case game.EnemyCrawler:
		return 'c'
	case game.EnemyRunner:
		return 'r'
	case game.EnemyGuardian:
		return 'G'
	case game.EnemyFloater:
		return 'f'
	case game.EnemySeeker:
		return 'X'
	default:
		return '?'
	}
}

func powerUpGlyph(k game.PowerUpKind) rune {
	switch k {
	case game.PowerUpSpeed:
		return 'S'
	case game.PowerUpInvisibility:
		return 'I'
	case game.PowerUpJump:
		return 'J'
	case game.PowerUpHealth:
		return '+'
	default:
		return '*'
	}
}
