package game

import (
	"fmt"
	"log"
)

// GameContext is everything a system may read or change during a frame.
// It is passed to systems instead of living in globals.
type GameContext struct {
	Settings  Settings
	Tables    *Tables
	Player    *Snake
	HUD       HUD
	Events    *EventBus
	City      *City
	Query     SpatialQuery
	Enemies   *EnemySystem
	PowerUps  *PowerUpSystem
	Particles *ParticleSystem
	Camera    *Camera
	Rand      *Rand
	Score     int
}

// playerTarget is the head position enemies react to; false once the player
// is gone.
func (ctx *GameContext) playerTarget() (Vec3, bool) {
	if ctx.Player == nil || !ctx.Player.Alive {
		return Vec3{}, false
	}
	return ctx.Player.Pos, true
}

// Game runs one session: the context plus run bookkeeping.
type Game struct {
	*GameContext
	Session *GameSession

	seed    uint64
	runSeed uint64
	frame   uint64
}

// NewGame builds a session and starts the first run. A nil tables uses the
// embedded defaults; a nil hud discards HUD updates.
func NewGame(s Settings, tables *Tables, seed uint64, hud HUD) *Game {
	if tables == nil {
		tables = MustDefaultTables()
	}
	if hud == nil {
		hud = NopHUD{}
	}
	g := &Game{
		GameContext: &GameContext{
			Settings:  s,
			Tables:    tables,
			HUD:       hud,
			Events:    NewEventBus(),
			Enemies:   NewEnemySystem(seed),
			PowerUps:  NewPowerUpSystem(seed),
			Particles: NewParticleSystem(s.MaxParticles, seed),
			Camera:    &Camera{},
		},
		Session: NewGameSession(),
		seed:    seed,
	}
	g.start()
	return g
}

// start builds the world, player and populations for the current run.
func (g *Game) start() {
	g.runSeed = g.Session.StartRun(g.seed)
	g.Rand = NewRand(g.runSeed)
	g.City = GenerateCity(g.Settings.CityParams(), g.Tables, NewRand(g.runSeed^0xC17EB10C))
	g.Query = NewWorldQuery(g.City)
	g.Player = NewSnake(g.Settings)
	g.Score = 0
	g.Enemies.Reset(g.runSeed ^ 0xE11E)
	g.PowerUps.Reset(g.runSeed ^ 0xB0B5EED)
	g.Particles.Clear()
	g.Camera.Reset()
	g.Camera.Follow(g.Player, 0)

	g.SpawnEnemies(g.Settings.InitialEnemies)
	g.PowerUps.SpawnRandom(g.Settings.InitialPowerUps, g.GameContext)

	g.HUD.SetGameOver(false, 0)
	g.HUD.SetScore(0)
	g.HUD.SetHealth(g.Player.HP.Current, g.Player.HP.Max)
	g.HUD.SetCombo(0)
	log.Printf("run %d: %d buildings (%d overlapping), %d obstacles, %d enemies",
		g.Session.Run, len(g.City.Buildings), g.City.Residual, len(g.City.Obstacles), g.Enemies.AliveCount())
}

// Reset throws the current run away and starts a new one.
func (g *Game) Reset() {
	g.Session.Run++
	g.start()
	g.Events.Emit(Event{Type: EventRestart, Value: g.Session.Run})
}

// State is the session state.
func (g *Game) State() GameState { return g.Session.State }

// SpawnEnemies adds n enemies at free spots away from the player.
func (g *Game) SpawnEnemies(n int) {
	if n <= 0 {
		return
	}
	g.Enemies.SpawnRandom(n, g.GameContext)
}

// Grow adds a body segment to the player.
func (g *Game) Grow() {
	g.Player.Grow()
}

// ApplyPowerUp applies a power-up effect to the player and announces it.
func (g *Game) ApplyPowerUp(kind PowerUpKind, duration float64) {
	p := g.Player
	refreshed := p.ApplyPowerUp(kind, duration)
	if duration > 0 {
		g.HUD.ShowPowerUp(kind, duration)
	}
	if kind == PowerUpHealth {
		g.HUD.SetHealth(p.HP.Current, p.HP.Max)
	}
	text := string(kind)
	if t, ok := g.Tables.PowerUpType(kind); ok && t.Description != "" {
		text = t.Description
	}
	if refreshed {
		text += " (refreshed)"
	}
	g.HUD.ShowMessage(text, Palette.PowerUpMsg)
	v := 0
	if refreshed {
		v = 1
	}
	g.Events.Emit(Event{Type: EventPowerUpCollected, Pos: p.Pos, Kind: string(kind), Value: v})
}

// ToggleCrazyMode flips between strafing and rotating on the side keys.
func (g *Game) ToggleCrazyMode() {
	p := g.Player
	p.CrazyMode = !p.CrazyMode
	if p.CrazyMode {
		g.HUD.ShowMessage("CRAZY MODE: side keys rotate", Palette.Milestone)
	} else {
		g.HUD.ShowMessage("Normal mode: side keys strafe", Palette.PowerUpMsg)
	}
}

// maxFrameTime bounds a single step so a stalled frame cannot tunnel the
// head through a wall.
const maxFrameTime = 0.1

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64, c Controls) {
	dt = min(dt, maxFrameTime)
	g.frame++
	if c.Restart {
		g.Reset()
		return
	}
	if c.CameraFirst {
		g.Camera.SetMode(CameraFirstPerson)
	}
	if c.CameraThird {
		g.Camera.SetMode(CameraThirdPerson)
	}

	g.Session.Update(dt)
	if g.Session.State == StatePlaying {
		if c.ToggleCrazy {
			g.ToggleCrazyMode()
		}
		g.updatePlayer(dt, c)
	}

	g.City.Update(dt, g.Rand, g.Events, g.Particles)
	g.Enemies.Update(dt, g.GameContext)
	g.PowerUps.Update(dt, g.GameContext)

	g.CheckCollisions()
	g.Enemies.RemoveDead()
	g.PowerUps.RemoveDead()

	g.Particles.Update(dt)
	g.Camera.Follow(g.Player, dt)
	g.Camera.UpdateShake(dt, g.runSeed^g.frame)
}

func (g *Game) updatePlayer(dt float64, c Controls) {
	p := g.Player
	p.DamageCooldown.Tick(dt)
	p.Flash.Tick(dt)

	for _, kind := range p.tickEffects(dt) {
		g.HUD.ShowMessage(fmt.Sprintf("%s wore off", kind), Palette.Warning)
		g.Events.Emit(Event{Type: EventPowerUpExpired, Pos: p.Pos, Kind: string(kind)})
	}
	if p.tickCombo(dt) {
		g.HUD.SetCombo(0)
	}

	switch {
	case p.IsCrossing():
		p.updateCrossing(dt)
	case !p.DisableMovement:
		p.Steer(c, dt)
		p.updateSpeed(c)
		p.updateJump(c, dt)
		g.movePlayer(dt, c)
	}

	p.Trail.Record(p.Pos, dt)
	p.Trail.Update(dt)
}

// gameOver locks the player the first time health runs out.
func (g *Game) gameOver() {
	if !g.Session.CheckGameOver(g.Player, g.Score) {
		return
	}
	p := g.Player
	p.Alive = false
	p.DisableMovement = true
	g.HUD.SetGameOver(true, g.Score)
	g.HUD.ShowMessage("GAME OVER - press R to restart", Palette.Warning)
	g.Events.Emit(Event{Type: EventGameOver, Pos: p.Pos, Value: g.Score})
	log.Printf("run %d: game over, score %d, length %d", g.Session.Run, g.Score, p.Trail.Len())
}
