package game

import "math"

type PowerUpKind string

const (
	PowerUpSpeed        PowerUpKind = "speed"
	PowerUpInvisibility PowerUpKind = "invisibility"
	PowerUpJump         PowerUpKind = "jump"
	PowerUpHealth       PowerUpKind = "health"
)

// PowerUpType is one row of the power-up table. Duration 0 means instant.
type PowerUpType struct {
	Kind        PowerUpKind `yaml:"kind"`
	Duration    float64     `yaml:"duration"`
	Color       RGB         `yaml:"color"`
	Description string      `yaml:"description"`
	Weight      int         `yaml:"weight"`
}

type PowerUp struct {
	ID       EntityID
	Kind     PowerUpKind
	Pos      Vec3
	Duration float64
	Color    RGB
	Spin     float64 // radians, for rendering
	Timer    float64 // bob phase
	Alive    bool
}

const powerUpHeight = 1.0

// PowerUpSystem keeps a small number of pickups scattered around the city.
type PowerUpSystem struct {
	Items      []PowerUp
	SpawnTimer Countdown

	seed     uint64
	spawnSeq uint64
	lastKind PowerUpKind
}

func NewPowerUpSystem(seed uint64) *PowerUpSystem {
	ps := &PowerUpSystem{}
	ps.Reset(seed)
	return ps
}

func (ps *PowerUpSystem) Reset(seed uint64) {
	ps.Items = ps.Items[:0]
	ps.seed = seed
	ps.spawnSeq = 0
	ps.lastKind = ""
	ps.SpawnTimer = 0
}

func (ps *PowerUpSystem) nextSpawnRand(salt uint64) *Rand {
	ps.spawnSeq++
	return NewRand(splitmix64(ps.seed ^ salt ^ ps.spawnSeq*0xB0105))
}

func (ps *PowerUpSystem) hasNearby(pos Vec3, minDist float64) bool {
	for i := range ps.Items {
		if ps.Items[i].Alive && HorizDist(ps.Items[i].Pos, pos) < minDist {
			return true
		}
	}
	return false
}

func (ps *PowerUpSystem) pickSpawnPos(r *Rand, ctx *GameContext) Vec3 {
	avoid, _ := ctx.playerTarget()
	pos := ctx.City.SafeSpot(r, 1.5, avoid, 4)
	for tries := 0; tries < 14; tries++ {
		if !ps.hasNearby(pos, PowerUpMinGap) {
			break
		}
		pos = ctx.City.SafeSpot(r, 1.5, avoid, 4)
	}
	pos[1] = powerUpHeight
	return pos
}

// pickKind draws by table weight, favours health when the player is hurt
// and rerolls a repeat of the previous kind.
func (ps *PowerUpSystem) pickKind(t *Tables, r *Rand, hpFrac float64) PowerUpType {
	weights := make([]int, len(t.PowerUps))
	for i, p := range t.PowerUps {
		weights[i] = p.Weight
	}
	idx := r.Weighted(weights)

	if hpFrac < 0.5 && r.Intn(100) < 40 {
		for i, p := range t.PowerUps {
			if p.Kind == PowerUpHealth {
				idx = i
			}
		}
	}

	if t.PowerUps[idx].Kind == ps.lastKind && len(t.PowerUps) > 1 {
		idx = (idx + 1 + r.Intn(len(t.PowerUps)-1)) % len(t.PowerUps)
	}
	ps.lastKind = t.PowerUps[idx].Kind
	return t.PowerUps[idx]
}

// SpawnAt places a pickup of type t at pos.
func (ps *PowerUpSystem) SpawnAt(t PowerUpType, pos Vec3) *PowerUp {
	ps.Items = append(ps.Items, PowerUp{
		ID:       newID(),
		Kind:     t.Kind,
		Pos:      pos,
		Duration: t.Duration,
		Color:    t.Color,
		Alive:    true,
	})
	return &ps.Items[len(ps.Items)-1]
}

// SpawnRandom places n pickups at free spots.
func (ps *PowerUpSystem) SpawnRandom(n int, ctx *GameContext) {
	if ctx.City == nil || ctx.Tables == nil || len(ctx.Tables.PowerUps) == 0 {
		return
	}
	hp := 1.0
	if ctx.Player != nil {
		hp = ctx.Player.HP.Fraction()
	}
	for i := range n {
		r := ps.nextSpawnRand(uint64(i+1) * 0xB0B)
		pos := ps.pickSpawnPos(r, ctx)
		p := ps.SpawnAt(ps.pickKind(ctx.Tables, r, hp), pos)
		p.Timer = r.RangeF(0, 1)
	}
}

// Update spins and bobs pickups and spawns new ones while under the cap.
func (ps *PowerUpSystem) Update(dt float64, ctx *GameContext) {
	for i := range ps.Items {
		p := &ps.Items[i]
		p.Timer += dt
		p.Spin = math.Mod(p.Spin+dt*2, 2*math.Pi)
		p.Pos[1] = powerUpHeight + math.Sin(p.Timer*2)*0.15
	}

	if ps.AliveCount() >= ctx.Settings.PowerUpCap {
		return
	}
	if !ps.SpawnTimer.Active() {
		r := ps.nextSpawnRand(0x71)
		ps.SpawnTimer.Set(ctx.Settings.PowerUpInterval * r.RangeF(0.75, 1.25))
		return
	}
	if ps.SpawnTimer.Tick(dt) {
		ps.SpawnRandom(1, ctx)
	}
}

func (ps *PowerUpSystem) RemoveDead() {
	for i := 0; i < len(ps.Items); {
		if !ps.Items[i].Alive {
			ps.Items[i] = ps.Items[len(ps.Items)-1]
			ps.Items = ps.Items[:len(ps.Items)-1]
		} else {
			i++
		}
	}
}

func (ps *PowerUpSystem) AliveCount() int {
	n := 0
	for i := range ps.Items {
		if ps.Items[i].Alive {
			n++
		}
	}
	return n
}
