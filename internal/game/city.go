package game

import "math"

// Building is an axis-aligned box resting on the ground.
type Building struct {
	ID        EntityID
	Archetype string
	Pos       Vec3 // centre; Pos.Y is always Size.Y/2
	Size      Vec3 // width (X), height (Y), depth (Z)
	Color     RGB

	Bridge      bool // low span the player climbs over instead of colliding
	Collapsible bool
	Collapsed   bool
	Collapsing  Tween // animates Size while coming down
}

func (b *Building) ground() { b.Pos[1] = b.Size[1] / 2 }

func (b *Building) Min() Vec3 { return b.Pos.Sub(b.Size.Mul(0.5)) }
func (b *Building) Max() Vec3 { return b.Pos.Add(b.Size.Mul(0.5)) }

func (b *Building) Footprint() RectF {
	return rectAround(b.Pos, b.Size[0]/2, b.Size[2]/2)
}

func (b *Building) halfSpan() float64 {
	return math.Max(b.Size[0], b.Size[2]) / 2
}

// Obstacle is small street furniture; it can be jumped over.
type Obstacle struct {
	ID    EntityID
	Kind  string
	Pos   Vec3 // centre; Pos.Y is always Size.Y/2
	Size  Vec3
	Color RGB
}

func (o *Obstacle) Min() Vec3 { return o.Pos.Sub(o.Size.Mul(0.5)) }
func (o *Obstacle) Max() Vec3 { return o.Pos.Add(o.Size.Mul(0.5)) }

func (o *Obstacle) Footprint() RectF {
	return rectAround(o.Pos, o.Size[0]/2, o.Size[2]/2)
}

// CityParams controls procedural placement.
type CityParams struct {
	HalfExtent          float64 // playable area is [-HalfExtent, HalfExtent] on X and Z
	Margin              float64 // buildings keep this far from the edge
	GridStep            float64
	SkipChance          float64
	CoreRadius          float64 // grid points inside get tall buildings
	SpawnClearance      float64 // kept free around the origin
	MinSeparation       float64
	MaxAttempts         int
	FillerCount         int
	OverlapPasses       int
	ObstacleCount       int
	ObstacleClearance   float64
	CollapsibleFraction float64
	CollapseChance      float64 // per collapsible building per second
	CollapseTime        float64
	BridgeCount         int
}

func (s Settings) CityParams() CityParams {
	return CityParams{
		HalfExtent:          s.HalfExtent,
		Margin:              s.Margin,
		GridStep:            s.GridStep,
		SkipChance:          s.SkipChance,
		CoreRadius:          s.CoreRadius,
		SpawnClearance:      s.SpawnClearance,
		MinSeparation:       s.MinSeparation,
		MaxAttempts:         s.MaxAttempts,
		FillerCount:         s.FillerCount,
		OverlapPasses:       s.OverlapPasses,
		ObstacleCount:       s.ObstacleCount,
		ObstacleClearance:   s.ObstacleClearance,
		CollapsibleFraction: s.CollapsibleFraction,
		CollapseChance:      s.CollapseChance,
		CollapseTime:        s.CollapseTime,
		BridgeCount:         s.BridgeCount,
	}
}

// City is the static world: buildings, obstacles and their spatial index.
type City struct {
	Params    CityParams
	Buildings []Building
	Obstacles []Obstacle
	Index     *QuadNode
	Residual  int // overlapping building pairs left after the corrective pass

	scratch []EntityRef
}

// NewCity wraps pre-built geometry, grounding every box and indexing it.
func NewCity(p CityParams, buildings []Building, obstacles []Obstacle) *City {
	c := &City{Params: p, Buildings: buildings, Obstacles: obstacles}
	for i := range c.Buildings {
		if c.Buildings[i].ID == "" {
			c.Buildings[i].ID = newID()
		}
		c.Buildings[i].ground()
	}
	for i := range c.Obstacles {
		if c.Obstacles[i].ID == "" {
			c.Obstacles[i].ID = newID()
		}
		c.Obstacles[i].Pos[1] = c.Obstacles[i].Size[1] / 2
	}
	c.BuildIndex()
	return c
}

// GenerateCity lays out a city: a jittered grid with tall buildings near the
// centre, random fillers and bridges, a corrective overlap pass, then street
// obstacles clear of every building.
func GenerateCity(p CityParams, t *Tables, r *Rand) *City {
	c := &City{Params: p}
	c.placeGrid(t, r)
	c.placeFillers(t, r)
	c.placeBridges(t, r)
	c.Residual = FixBuildingOverlaps(c.Buildings, p.MinSeparation, p.HalfExtent-p.Margin, p.OverlapPasses)
	for i := range c.Buildings {
		c.Buildings[i].ground()
	}
	c.markCollapsible(r)
	c.scatterObstacles(t, r)
	c.BuildIndex()
	return c
}

func (c *City) placeGrid(t *Tables, r *Rand) {
	p := c.Params
	lim := p.HalfExtent - p.Margin
	if p.GridStep <= 0 {
		return
	}
	jitter := p.GridStep * 0.2
	for x := -lim; x <= lim; x += p.GridStep {
		for z := -lim; z <= lim; z += p.GridStep {
			if r.Chance(p.SkipChance) {
				continue
			}
			tier := t.Buildings.Short
			if math.Hypot(x, z) < p.CoreRadius {
				tier = t.Buildings.Tall
			}
			arch := tier[r.Intn(len(tier))]
			for range p.MaxAttempts {
				pos := Vec3{x + r.RangeF(-jitter, jitter), 0, z + r.RangeF(-jitter, jitter)}
				b := newBuilding(arch, pos, r)
				if c.canPlace(&b) {
					c.Buildings = append(c.Buildings, b)
					break
				}
			}
		}
	}
}

func (c *City) placeFillers(t *Tables, r *Rand) {
	p := c.Params
	lim := p.HalfExtent - p.Margin
	for range p.FillerCount {
		arch := t.Buildings.Short[r.Intn(len(t.Buildings.Short))]
		for range p.MaxAttempts {
			pos := Vec3{r.RangeF(-lim, lim), 0, r.RangeF(-lim, lim)}
			b := newBuilding(arch, pos, r)
			if c.canPlace(&b) {
				c.Buildings = append(c.Buildings, b)
				break
			}
		}
	}
}

func (c *City) placeBridges(t *Tables, r *Rand) {
	p := c.Params
	lim := p.HalfExtent - p.Margin
	if t.Buildings.Bridge.Name == "" {
		return
	}
	for range p.BridgeCount {
		for range p.MaxAttempts {
			pos := Vec3{r.RangeF(-lim, lim), 0, r.RangeF(-lim, lim)}
			b := newBuilding(t.Buildings.Bridge, pos, r)
			b.Bridge = true
			if r.Chance(0.5) {
				b.Size[0], b.Size[2] = b.Size[2], b.Size[0]
			}
			if c.canPlace(&b) {
				c.Buildings = append(c.Buildings, b)
				break
			}
		}
	}
}

func newBuilding(a BuildingArchetype, pos Vec3, r *Rand) Building {
	b := Building{
		ID:        newID(),
		Archetype: a.Name,
		Pos:       pos,
		Size:      Vec3{a.Width.Pick(r), a.Height.Pick(r), a.Depth.Pick(r)},
		Color:     a.Color.Add(r.Range(-12, 12), r.Range(-12, 12), r.Range(-12, 12)),
	}
	b.ground()
	return b
}

// canPlace checks bounds, the spawn clearing and minimum separation against
// every building placed so far.
func (c *City) canPlace(b *Building) bool {
	p := c.Params
	lim := p.HalfExtent - p.Margin
	if math.Abs(b.Pos[0]) > lim || math.Abs(b.Pos[2]) > lim {
		return false
	}
	if HorizDist(b.Pos, Vec3{}) < p.SpawnClearance+b.halfSpan() {
		return false
	}
	for i := range c.Buildings {
		if HorizDist(b.Pos, c.Buildings[i].Pos) < p.MinSeparation {
			return false
		}
	}
	return true
}

// FixBuildingOverlaps pushes apart pairs whose centres are closer than
// minDist, keeping centres within [-limit, limit]. It runs at most passes
// sweeps and returns the number of pairs still too close.
func FixBuildingOverlaps(bs []Building, minDist, limit float64, passes int) int {
	for range passes {
		moved := false
		for i := range bs {
			for j := i + 1; j < len(bs); j++ {
				a, b := &bs[i], &bs[j]
				d := HorizDist(a.Pos, b.Pos)
				if d >= minDist {
					continue
				}
				dir := dirTo(a.Pos, b.Pos)
				if dir == (Vec3{}) {
					dir = Vec3{1, 0, 0}
				}
				push := (minDist - d) / 2
				a.Pos = clampXZ(a.Pos.Sub(dir.Mul(push)), limit)
				b.Pos = clampXZ(b.Pos.Add(dir.Mul(push)), limit)
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return OverlappingPairs(bs, minDist)
}

// OverlappingPairs counts building pairs closer than minDist.
func OverlappingPairs(bs []Building, minDist float64) int {
	n := 0
	for i := range bs {
		for j := i + 1; j < len(bs); j++ {
			if HorizDist(bs[i].Pos, bs[j].Pos) < minDist-1e-6 {
				n++
			}
		}
	}
	return n
}

func clampXZ(p Vec3, limit float64) Vec3 {
	p[0] = clampF(p[0], -limit, limit)
	p[2] = clampF(p[2], -limit, limit)
	return p
}

func (c *City) markCollapsible(r *Rand) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if b.Bridge {
			continue
		}
		b.Collapsible = r.Chance(c.Params.CollapsibleFraction)
	}
}

func (c *City) scatterObstacles(t *Tables, r *Rand) {
	p := c.Params
	if len(t.Obstacles) == 0 {
		return
	}
	lim := p.HalfExtent - 1
	for range p.ObstacleCount {
		ot := t.Obstacles[r.Intn(len(t.Obstacles))]
		for range p.MaxAttempts {
			pos := Vec3{r.RangeF(-lim, lim), ot.Size[1] / 2, r.RangeF(-lim, lim)}
			if HorizDist(pos, Vec3{}) < p.SpawnClearance {
				continue
			}
			if c.nearBuilding(pos, p.ObstacleClearance) {
				continue
			}
			size := ot.Size
			if r.Chance(0.5) {
				size[0], size[2] = size[2], size[0]
			}
			c.Obstacles = append(c.Obstacles, Obstacle{
				ID: newID(), Kind: ot.Kind, Pos: pos, Size: size, Color: ot.Color,
			})
			break
		}
	}
}

func (c *City) nearBuilding(pos Vec3, clearance float64) bool {
	for i := range c.Buildings {
		if rectDist(c.Buildings[i].Footprint(), pos) < clearance {
			return true
		}
	}
	return false
}

// rectDist is the ground-plane distance from p to the rectangle, 0 inside.
func rectDist(r RectF, p Vec3) float64 {
	dx := math.Max(math.Max(r.X0-p[0], 0), p[0]-r.X1)
	dz := math.Max(math.Max(r.Z0-p[2], 0), p[2]-r.Z1)
	return math.Hypot(dx, dz)
}

// BuildIndex rebuilds the quadtree from the current geometry.
func (c *City) BuildIndex() {
	h := c.Params.HalfExtent + c.Params.GridStep
	if h <= 0 {
		h = 1
	}
	c.Index = NewQuadNode(RectF{X0: -h, Z0: -h, X1: h, Z1: h}, 0)
	for i := range c.Buildings {
		b := &c.Buildings[i]
		c.Index.Insert(EntityRef{ID: b.ID, Kind: KindBuilding, Slot: i}, b.Footprint())
	}
	for i := range c.Obstacles {
		o := &c.Obstacles[i]
		c.Index.Insert(EntityRef{ID: o.ID, Kind: KindObstacle, Slot: i}, o.Footprint())
	}
}

// Near returns index entries whose footprint touches r. The slice is reused
// across calls.
func (c *City) Near(r RectF) []EntityRef {
	c.scratch = c.scratch[:0]
	if c.Index != nil {
		c.Index.Query(r, &c.scratch)
	}
	return c.scratch
}

// Blocked reports whether a circle of radius at pos touches any footprint.
func (c *City) Blocked(pos Vec3, radius float64) bool {
	for _, ref := range c.Near(rectAround(pos, radius, radius)) {
		var fp RectF
		switch ref.Kind {
		case KindBuilding:
			fp = c.Buildings[ref.Slot].Footprint()
		case KindObstacle:
			fp = c.Obstacles[ref.Slot].Footprint()
		default:
			continue
		}
		if rectDist(fp, pos) < radius {
			return true
		}
	}
	return false
}

// SafeSpot picks a ground position clear of geometry by clearance and at
// least minAway from avoid. After 48 failed tries it returns the last candidate.
func (c *City) SafeSpot(r *Rand, clearance float64, avoid Vec3, minAway float64) Vec3 {
	lim := c.Params.HalfExtent - clearance
	var pos Vec3
	for range 48 {
		pos = Vec3{r.RangeF(-lim, lim), 0, r.RangeF(-lim, lim)}
		if minAway > 0 && HorizDist(pos, avoid) < minAway {
			continue
		}
		if !c.Blocked(pos, clearance) {
			return pos
		}
	}
	return pos
}

// ClampToBounds keeps a radius-sized body inside the playable area.
func (c *City) ClampToBounds(p Vec3, radius float64) Vec3 {
	return clampXZ(p, c.Params.HalfExtent-radius)
}

// Collapse starts bringing building i down. It returns false if the building
// cannot collapse or already has.
func (c *City) Collapse(i int) bool {
	b := &c.Buildings[i]
	if !b.Collapsible || b.Collapsed || b.Collapsing.Active() {
		return false
	}
	to := Vec3{b.Size[0], b.Size[1] * 0.25, b.Size[2]}
	if c.Params.CollapseTime <= 0 {
		b.Size = to
		b.ground()
		b.Collapsed = true
		return true
	}
	b.Collapsing = NewTween(b.Size, to, c.Params.CollapseTime, EaseOutExpo)
	return true
}

// Update rolls random collapses and animates the ones in progress.
func (c *City) Update(dt float64, r *Rand, events *EventBus, ps *ParticleSystem) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if b.Collapsing.Active() {
			size, done := b.Collapsing.Step(dt)
			b.Size = size
			b.ground()
			if done {
				b.Collapsed = true
			}
			continue
		}
		if !b.Collapsible || b.Collapsed {
			continue
		}
		if !r.Chance(c.Params.CollapseChance * dt) {
			continue
		}
		if !c.Collapse(i) {
			continue
		}
		if ps != nil {
			ps.SpawnDust(b.Pos, b.Size[0]/2, b.Size[2]/2, 24)
		}
		if events != nil {
			events.Emit(Event{Type: EventBuildingCollapsed, Pos: b.Pos, ID: b.ID, Kind: b.Archetype})
		}
	}
}
