package desktop

import (
	"math"

	"snakecity/internal/game"
)

var skyColor = game.RGB{R: 150, G: 190, B: 225}

// drawScene draws the city, pickups, enemies and the player as boxes.
func drawScene(r *Renderer, g *game.Game, now float64) {
	half := g.Settings.HalfExtent
	r.DrawBox(game.Vec3{0, -0.05, 0}, game.Vec3{2 * half, 0.1, 2 * half}, 0, game.Palette.Ground, 1)

	for i := range g.City.Buildings {
		b := &g.City.Buildings[i]
		r.DrawBox(b.Pos, b.Size, 0, b.Color, 1)
	}
	for i := range g.City.Obstacles {
		o := &g.City.Obstacles[i]
		r.DrawBox(o.Pos, o.Size, 0, o.Color, 1)
	}

	for i := range g.PowerUps.Items {
		p := &g.PowerUps.Items[i]
		if !p.Alive {
			continue
		}
		r.DrawBox(p.Pos, game.Vec3{0.7, 0.7, 0.7}, p.Spin, p.Color, 1)
	}

	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if !e.Alive {
			continue
		}
		s := e.Scale
		r.DrawBox(e.Pos, game.Vec3{s, s, s}, e.Yaw, e.Color, 1)
		// Eyes make the heading readable.
		eye := e.Pos.Add(game.ForwardFromYaw(e.Yaw).Mul(s * 0.5)).Add(game.Vec3{0, s * 0.2, 0})
		r.DrawBox(eye, game.Vec3{s * 0.6, s * 0.15, 0.05}, e.Yaw, game.RGB{R: 250, G: 250, B: 250}, 1)
	}

	drawSnake(r, g.Player, g.Camera.Mode, now)
}

func drawSnake(r *Renderer, p *game.Snake, mode game.CameraMode, now float64) {
	alpha := float32(1)
	if p.Invisible {
		alpha = 0.35 + 0.1*float32(math.Sin(now*8))
	}
	for i, seg := range p.Trail.Segments {
		col := game.Palette.Body
		if i%2 == 1 {
			col = game.Palette.BodyAlt
		}
		s := seg.Scale
		r.DrawBox(seg.Pos, game.Vec3{s, s, s}, 0, col, alpha)
	}
	if mode == game.CameraFirstPerson {
		return
	}
	r.DrawBox(p.Pos, game.Vec3{1, 1, 1}, p.Yaw, p.HeadColor(), alpha)
}
