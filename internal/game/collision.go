package game

import "math"

const (
	powerUpRadius  = 0.5
	bridgeExitGap  = 0.6
	hitShake       = 0.3
	hitShakeTime   = 0.25
	burstParticles = 16
)

// movePlayer probes ahead before committing the step. Buildings and
// obstacles block and may hurt; bridges start a crossing; invisibility
// phases through buildings. The probe reaches past the whole step so a fast
// head cannot skip over thin geometry; a hit beyond ProbeDistance first
// closes the gap to ProbeDistance.
func (g *Game) movePlayer(dt float64, c Controls) {
	p := g.Player
	dir := p.MoveIntent(c)
	if dir == (Vec3{}) {
		return
	}
	step := p.Speed * dt
	reach := math.Max(g.Settings.ProbeDistance, step+PlayerRadius)

	hit := g.Query.Raycast(p.Pos, dir, reach, p.ID)
	inside := hit.Hit && hit.Distance <= 1e-9
	if !inside {
		p.Phasing = false
	}
	if hit.Hit {
		switch {
		case inside && (p.Phasing || p.Invisible && hit.Kind == KindBuilding):
			// Left inside geometry by an expired effect or a crossing; walk out.
		case hit.Kind == KindBuilding && p.Invisible:
		case hit.Kind == KindBuilding && g.City.Buildings[hit.Slot].Bridge:
			g.closeGap(hit, dir)
			g.crossBridge(hit.Slot, dir)
			return
		default:
			g.closeGap(hit, dir)
			g.hitWall(hit, dir)
			return
		}
	}
	p.Pos = g.City.ClampToBounds(p.Pos.Add(dir.Mul(step)), PlayerRadius)
}

// closeGap advances the head until hit is ProbeDistance away.
func (g *Game) closeGap(hit Hit, dir Vec3) {
	if gap := hit.Distance - g.Settings.ProbeDistance; gap > 0 {
		p := g.Player
		p.Pos = g.City.ClampToBounds(p.Pos.Add(dir.Mul(gap)), PlayerRadius)
	}
}

func (g *Game) crossBridge(slot int, dir Vec3) {
	p := g.Player
	b := &g.City.Buildings[slot]
	_, tExit, _, ok := RayAABB(p.Pos, dir, b.Min(), b.Max())
	if !ok {
		return
	}
	to := g.City.ClampToBounds(p.Pos.Add(dir.Mul(tExit+PlayerRadius+bridgeExitGap)), PlayerRadius)
	p.startCrossing(to, b.Size[1], g.Settings.BridgeCrossTime)
}

// hitWall handles running into solid geometry: blocked always, hurt only
// when neither invisible nor cooling down. The knockback pushes the head back
// against its direction of travel and stops short of anything behind it.
func (g *Game) hitWall(hit Hit, dir Vec3) {
	p := g.Player
	if p.Invisible || p.DamageCooldown.Active() {
		return
	}
	g.damagePlayer(1, hit.Kind.String())
	if g.Session.State != StatePlaying {
		return
	}
	back := dir.Mul(-1)
	dist := g.Settings.Knockback
	if behind := g.Query.Raycast(p.Pos, back, dist+PlayerRadius, p.ID); behind.Hit && behind.Distance > 1e-9 {
		dist = math.Max(0, behind.Distance-PlayerRadius)
	}
	p.knockback(back, dist)
	p.Pos = g.City.ClampToBounds(p.Pos, PlayerRadius)
}

func (g *Game) damagePlayer(n int, source string) {
	p := g.Player
	p.takeDamage(n)
	g.HUD.SetHealth(p.HP.Current, p.HP.Max)
	g.Camera.AddShake(hitShake, hitShakeTime)
	g.Events.Emit(Event{Type: EventPlayerDamaged, Pos: p.Pos, Kind: source, Value: p.HP.Current})
	if p.HP.IsDead() {
		g.gameOver()
	}
}

// CheckCollisions resolves head contact with enemies and power-ups. Entities
// are only flagged dead during the scan; replacements spawn afterwards.
func (g *Game) CheckCollisions() {
	if g.Session.State != StatePlaying {
		return
	}
	p := g.Player
	head := Sphere(p.Pos, PlayerRadius)

	replace := 0
	for i := range g.Enemies.Enemies {
		e := &g.Enemies.Enemies[i]
		if !e.Alive {
			continue
		}
		if hit, _ := g.Query.Overlap(head, Sphere(e.Pos, e.Radius())); !hit {
			continue
		}
		if e.Behavior == BehaviorSeek {
			e.Alive = false
			g.Events.Emit(Event{Type: EventSeekerHit, Pos: e.Pos, ID: e.ID, Kind: string(e.Kind)})
			g.Particles.SpawnBurst(e.Pos, e.Color, burstParticles/2)
			if !p.DamageCooldown.Active() {
				g.damagePlayer(1, string(e.Kind))
			}
			if g.Session.State != StatePlaying {
				break
			}
			continue
		}
		g.eatEnemy(e)
		replace++
	}
	g.SpawnEnemies(replace)

	for i := range g.PowerUps.Items {
		it := &g.PowerUps.Items[i]
		if !it.Alive {
			continue
		}
		if hit, _ := g.Query.Overlap(head, Sphere(it.Pos, powerUpRadius)); !hit {
			continue
		}
		it.Alive = false
		g.Particles.SpawnSparks(it.Pos, it.Color, 12)
		g.ApplyPowerUp(it.Kind, it.Duration)
	}
}

// eatEnemy scores, grows and announces an eaten enemy.
func (g *Game) eatEnemy(e *Enemy) {
	p := g.Player
	e.Alive = false

	before := p.registerEat()
	gain := e.Points
	if g.Settings.ComboBonus {
		gain = e.Points * (1 + min(before, g.Settings.ComboMaxBonus))
	}
	g.Score += gain
	g.HUD.SetScore(g.Score)
	g.HUD.SetCombo(p.Combo)
	if label, col := comboMilestone(p.Combo); label != "" {
		g.HUD.ShowMessage(label, col)
	}

	g.Grow()
	g.Particles.SpawnBurst(e.Pos, e.Color, burstParticles)
	g.Events.Emit(Event{Type: EventEnemyEaten, Pos: e.Pos, ID: e.ID, Kind: string(e.Kind), Value: gain})
}
