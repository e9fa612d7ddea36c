package game

import "github.com/google/uuid"

// EntityID identifies any spawned world object.
type EntityID string

func newID() EntityID {
	return EntityID(uuid.NewString())
}

// EntityKind classifies what a raycast or overlap touched.
type EntityKind int

const (
	KindNone EntityKind = iota
	KindPlayer
	KindSegment
	KindBuilding
	KindObstacle
	KindEnemy
	KindPowerUp
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSegment:
		return "segment"
	case KindBuilding:
		return "building"
	case KindObstacle:
		return "obstacle"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	default:
		return "none"
	}
}

// Countdown is a per-entity timer ticked by its owner once per frame.
type Countdown float64

func (c *Countdown) Set(seconds float64) { *c = Countdown(seconds) }

func (c Countdown) Active() bool { return c > 0 }

func (c Countdown) Remaining() float64 {
	if c < 0 {
		return 0
	}
	return float64(c)
}

// Tick advances the timer and reports true only on the frame it runs out.
func (c *Countdown) Tick(dt float64) bool {
	if *c <= 0 {
		return false
	}
	*c -= Countdown(dt)
	if *c <= 0 {
		*c = 0
		return true
	}
	return false
}
