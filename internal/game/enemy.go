package game

import "math"

type EnemyKind string

const (
	EnemyCrawler  EnemyKind = "crawler"
	EnemyRunner   EnemyKind = "runner"
	EnemyGuardian EnemyKind = "guardian"
	EnemyFloater  EnemyKind = "floater"
	EnemySeeker   EnemyKind = "seeker"
)

// Behavior selects the movement state machine an enemy runs.
type Behavior string

const (
	BehaviorPatrol Behavior = "patrol" // loop through waypoints
	BehaviorGuard  Behavior = "guard"  // chase intruders near the anchor, else return
	BehaviorChase  Behavior = "chase"  // chase within detection range, else wander
	BehaviorWander Behavior = "wander" // random headings, turn back at the boundary
	BehaviorSeek   Behavior = "seek"   // always home on the player
)

// EnemyType is one row of the enemy table.
type EnemyType struct {
	Kind     EnemyKind `yaml:"kind"`
	Behavior Behavior  `yaml:"behavior"`
	Speed    float64   `yaml:"speed"`
	Points   int       `yaml:"points"`
	Scale    float64   `yaml:"scale"`
	Color    RGB       `yaml:"color"`
	Hover    float64   `yaml:"hover"`
	Weight   int       `yaml:"weight"`
}

type Enemy struct {
	ID       EntityID
	Kind     EnemyKind
	Behavior Behavior
	Pos      Vec3
	BaseY    float64 // resting height before bob
	Dir      Vec3    // current unit heading on the ground plane
	Yaw      float64
	Speed    float64
	Points   int
	Scale    float64
	Color    RGB

	Waypoints   []Vec3
	Waypoint    int
	Anchor      Vec3
	GuardRadius float64
	DetectRange float64
	Redirect    Countdown // wander heading change timer
	Chasing     bool      // guard/chase currently pursuing the player

	Age   float64
	Alive bool
}

// Radius is the collision sphere radius.
func (e *Enemy) Radius() float64 { return 0.5 * e.Scale }

// NewEnemy builds an enemy of type t at pos with per-instance speed variance.
func NewEnemy(t EnemyType, pos Vec3, detectRange float64, r *Rand) Enemy {
	e := Enemy{
		ID:          newID(),
		Kind:        t.Kind,
		Behavior:    t.Behavior,
		Pos:         pos,
		BaseY:       EnemyBaseY + t.Hover,
		Speed:       t.Speed * r.RangeF(0.8, 1.2),
		Points:      t.Points,
		Scale:       t.Scale,
		Color:       t.Color,
		Anchor:      pos,
		DetectRange: detectRange,
		Alive:       true,
	}
	e.Pos[1] = e.BaseY
	e.face(r.Dir())

	switch t.Behavior {
	case BehaviorPatrol:
		n := r.Range(3, 6)
		e.Waypoints = make([]Vec3, n)
		for i := range n {
			a := r.RangeF(0, 2*math.Pi)
			rad := r.RangeF(5, 10)
			e.Waypoints[i] = Vec3{pos[0] + math.Cos(a)*rad, e.BaseY, pos[2] + math.Sin(a)*rad}
		}
	case BehaviorGuard:
		e.GuardRadius = r.RangeF(5, 10)
	case BehaviorWander, BehaviorChase, BehaviorSeek:
		e.Redirect.Set(r.RangeF(1, 3))
	}
	return e
}

func (e *Enemy) face(dir Vec3) {
	if dir == (Vec3{}) {
		return
	}
	e.Dir = dir
	e.Yaw = YawOf(dir)
}

func (e *Enemy) step(dir Vec3, dt float64) {
	e.face(dir)
	e.Pos = e.Pos.Add(dir.Mul(e.Speed * dt))
}

// Update advances the behavior state machine. target is the player head and
// hasTarget is false when there is no player to react to.
func (e *Enemy) Update(dt float64, target Vec3, hasTarget bool, limit float64, r *Rand) {
	if !e.Alive {
		return
	}
	e.Age += dt
	e.Chasing = false

	switch e.Behavior {
	case BehaviorPatrol:
		e.patrol(dt)
	case BehaviorGuard:
		e.guard(dt, target, hasTarget)
	case BehaviorChase:
		if hasTarget && HorizDist(e.Pos, target) < e.DetectRange {
			e.Chasing = true
			e.step(dirTo(e.Pos, target), dt)
		} else {
			e.wander(dt, limit, r)
		}
	case BehaviorWander:
		e.wander(dt, limit, r)
	case BehaviorSeek:
		if hasTarget {
			e.Chasing = true
			e.step(dirTo(e.Pos, target), dt)
		} else {
			e.wander(dt, limit, r)
		}
	}

	e.Pos[1] = e.BaseY + math.Sin(e.Age*2)*0.1
}

func (e *Enemy) patrol(dt float64) {
	if len(e.Waypoints) == 0 {
		return
	}
	wp := e.Waypoints[e.Waypoint]
	e.step(dirTo(e.Pos, wp), dt)
	if HorizDist(e.Pos, wp) < 1 {
		e.Waypoint = (e.Waypoint + 1) % len(e.Waypoints)
	}
}

func (e *Enemy) guard(dt float64, target Vec3, hasTarget bool) {
	if hasTarget && HorizDist(target, e.Anchor) < e.GuardRadius {
		e.Chasing = true
		e.step(dirTo(e.Pos, target), dt)
		return
	}
	if HorizDist(e.Pos, e.Anchor) > 0.5 {
		e.step(dirTo(e.Pos, e.Anchor), dt)
	}
}

func (e *Enemy) wander(dt float64, limit float64, r *Rand) {
	if e.Redirect.Tick(dt) || e.Dir == (Vec3{}) {
		e.face(r.Dir())
		e.Redirect.Set(r.RangeF(1, 3))
	}
	e.step(e.Dir, dt)

	if math.Abs(e.Pos[0]) <= limit && math.Abs(e.Pos[2]) <= limit {
		return
	}
	// Turn back with a little jitter; the offending axis always points inward.
	d := e.Dir.Mul(-1).Add(Vec3{r.RangeF(-0.2, 0.2), 0, r.RangeF(-0.2, 0.2)})
	if e.Pos[0] > limit {
		d[0] = -math.Abs(d[0])
	} else if e.Pos[0] < -limit {
		d[0] = math.Abs(d[0])
	}
	if e.Pos[2] > limit {
		d[2] = -math.Abs(d[2])
	} else if e.Pos[2] < -limit {
		d[2] = math.Abs(d[2])
	}
	if l := d.Len(); l > 1e-9 {
		e.face(d.Mul(1 / l))
	}
	e.Pos = clampXZ(e.Pos, limit)
}
