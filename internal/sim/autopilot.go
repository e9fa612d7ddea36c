// Package sim drives the game headlessly for soak runs and tests.
package sim

import (
	"math"

	"snakecity/internal/game"
)

const (
	lookAhead   = 4.0  // how far ahead buildings are avoided
	maxTurnRate = 3.0  // radians per second the pilot will turn
	boostRange  = 12.0 // boost toward targets closer than this
)

// Autopilot steers toward the nearest thing worth eating and around the
// buildings in its way. It never targets seekers. Once it picks an enemy it
// keeps chasing that one until it is eaten or gone.
type Autopilot struct {
	Restart bool // press restart once the run is over

	chase   game.EntityID // enemy being chased, if any
	dodging float64       // seconds left of an avoidance turn
	dodge   float64       // yaw offset held while dodging
}

// target returns the chased enemy while it lives, otherwise the nearest
// edible enemy or power-up.
func (a *Autopilot) target(g *game.Game) (game.Vec3, bool) {
	if e := g.Enemies.Find(a.chase); e != nil {
		return e.Pos, true
	}
	a.chase = ""

	head := g.Player.Pos
	best, found := math.Inf(1), false
	var pos game.Vec3
	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if !e.Alive || e.Kind == game.EnemySeeker {
			continue
		}
		if d := game.HorizDist(head, e.Pos); d < best {
			best, pos, found = d, e.Pos, true
			a.chase = e.ID
		}
	}
	for i := range g.PowerUps.Items {
		p := &g.PowerUps.Items[i]
		if !p.Alive {
			continue
		}
		if d := game.HorizDist(head, p.Pos); d < best {
			best, pos, found = d, p.Pos, true
			a.chase = ""
		}
	}
	return pos, found
}

// blocked reports whether solid geometry lies within lookAhead along yaw.
// Bridges are not in the way.
func blocked(g *game.Game, yaw float64) bool {
	p := g.Player
	hit := g.Query.Raycast(p.Pos, game.ForwardFromYaw(yaw), lookAhead, p.ID)
	switch {
	case !hit.Hit:
		return false
	case hit.Kind == game.KindBuilding:
		return !g.City.Buildings[hit.Slot].Bridge
	default:
		return hit.Kind == game.KindObstacle
	}
}

// Controls decides this frame's input.
func (a *Autopilot) Controls(g *game.Game, dt float64) game.Controls {
	p := g.Player
	if g.State() == game.StateGameOver {
		return game.Controls{Restart: a.Restart}
	}

	want := p.Yaw
	tgt, ok := a.target(g)
	if ok {
		want = game.YawOf(tgt.Sub(p.Pos))
	}

	if a.dodging > 0 {
		a.dodging -= dt
		want = p.Yaw + a.dodge
	} else if blocked(g, p.Yaw) {
		// Turn toward whichever side is clear, right first.
		a.dodge = math.Pi / 2
		if blocked(g, p.Yaw+a.dodge) && !blocked(g, p.Yaw-a.dodge) {
			a.dodge = -a.dodge
		}
		a.dodging = 0.5
		want = p.Yaw + a.dodge
	}

	turn := game.AngDiff(p.Yaw, want)
	limit := maxTurnRate * dt
	turn = math.Max(-limit, math.Min(limit, turn))

	c := game.Controls{Forward: true}
	if sens := g.Settings.MouseSensitivity; sens > 0 {
		c.MouseDX = turn / sens
	}
	if ok && a.dodging <= 0 && game.HorizDist(p.Pos, tgt) < boostRange {
		c.Boost = true
	}
	c.Jump = p.CanJump && blocked(g, p.Yaw)
	return c
}
