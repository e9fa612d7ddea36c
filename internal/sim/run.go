package sim

import (
	"fmt"
	"log"

	"snakecity/internal/game"
)

// Summary totals what happened over a headless run.
type Summary struct {
	Frames     int
	Runs       int // runs started, counting the first
	GameOvers  int
	Eaten      int
	Hits       int
	SeekerHits int
	PowerUps   int
	Collapses  int
	BestScore  int
	MaxLength  int

	// State of the run in progress when the frames ran out.
	RunTime  float64 // seconds
	Score    int
	Health   int
	Segments int
	Enemies  int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d frames, %d runs (%d game overs), best score %d, longest %d; eaten %d, hits %d (seeker %d), power-ups %d, collapses %d; last run: %.1fs, score %d, health %d, segments %d, enemies %d",
		s.Frames, s.Runs, s.GameOvers, s.BestScore, s.MaxLength, s.Eaten, s.Hits, s.SeekerHits, s.PowerUps, s.Collapses,
		s.RunTime, s.Score, s.Health, s.Segments, s.Enemies)
}

// Run steps g for the given number of frames of dt seconds each, with
// pilot providing input.
func Run(g *game.Game, frames int, dt float64, pilot *Autopilot) Summary {
	s := Summary{Runs: 1}
	count := func(n *int) game.EventHandler {
		return func(game.Event) { *n++ }
	}
	g.Events.Subscribe(game.EventEnemyEaten, count(&s.Eaten))
	g.Events.Subscribe(game.EventPlayerDamaged, count(&s.Hits))
	g.Events.Subscribe(game.EventSeekerHit, count(&s.SeekerHits))
	g.Events.Subscribe(game.EventPowerUpCollected, count(&s.PowerUps))
	g.Events.Subscribe(game.EventBuildingCollapsed, count(&s.Collapses))
	g.Events.Subscribe(game.EventGameOver, count(&s.GameOvers))
	g.Events.Subscribe(game.EventRestart, count(&s.Runs))

	for i := 0; i < frames; i++ {
		g.Update(dt, pilot.Controls(g, dt))
		s.Frames++
		if n := g.Player.Trail.Len(); n > s.MaxLength {
			s.MaxLength = n
		}
		if g.Score > s.BestScore {
			s.BestScore = g.Score
		}
	}
	s.RunTime = g.Session.RunTimer
	s.Score = g.Score
	s.Health = g.Player.HP.Current
	s.Segments = g.Player.Trail.Len()
	s.Enemies = g.Enemies.AliveCount()
	log.Printf("sim: %s", s)
	return s
}
