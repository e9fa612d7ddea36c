package game

import (
	"math"
	"testing"
)

func TestGenerateCityOverlapBound(t *testing.T) {
	tables := MustDefaultTables()
	p := DefaultSettings().CityParams()
	for seed := uint64(1); seed <= 20; seed++ {
		c := GenerateCity(p, tables, NewRand(seed))
		n := len(c.Buildings)
		if n < 20 {
			t.Fatalf("seed %d: only %d buildings", seed, n)
		}
		pairs := n * (n - 1) / 2
		bad := OverlappingPairs(c.Buildings, p.MinSeparation)
		if ratio := float64(bad) / float64(pairs); ratio >= 0.02 {
			t.Fatalf("seed %d: %d of %d pairs overlap (%.3f)", seed, bad, pairs, ratio)
		}
		if bad != c.Residual {
			t.Errorf("seed %d: residual %d, counted %d", seed, c.Residual, bad)
		}
	}
}

func TestGenerateCityGroundsAndBounds(t *testing.T) {
	p := DefaultSettings().CityParams()
	c := GenerateCity(p, MustDefaultTables(), NewRand(99))
	lim := p.HalfExtent - p.Margin
	for _, b := range c.Buildings {
		if math.Abs(b.Pos[1]-b.Size[1]/2) > 1e-9 {
			t.Fatalf("%s not grounded: y=%v h=%v", b.Archetype, b.Pos[1], b.Size[1])
		}
		if math.Abs(b.Pos[0]) > lim+1e-9 || math.Abs(b.Pos[2]) > lim+1e-9 {
			t.Fatalf("%s outside bounds at %v", b.Archetype, b.Pos)
		}
	}
	if c.Blocked(Vec3{0, GroundY, 0}, PlayerRadius) {
		t.Fatal("spawn point is blocked")
	}
}

func TestGenerateCityTallCore(t *testing.T) {
	tables := MustDefaultTables()
	tall := map[string]bool{}
	for _, a := range tables.Buildings.Tall {
		tall[a.Name] = true
	}
	p := DefaultSettings().CityParams()
	c := GenerateCity(p, tables, NewRand(5))
	var coreTall, outerTall, outer int
	for _, b := range c.Buildings {
		if b.Bridge {
			continue
		}
		if HorizDist(b.Pos, Vec3{}) < p.CoreRadius-p.GridStep*0.5 {
			if tall[b.Archetype] {
				coreTall++
			}
			continue
		}
		if HorizDist(b.Pos, Vec3{}) > p.CoreRadius+p.GridStep {
			outer++
			if tall[b.Archetype] {
				outerTall++
			}
		}
	}
	if coreTall == 0 {
		t.Fatal("no tall buildings near the centre")
	}
	if outerTall != 0 {
		t.Fatalf("%d of %d outer buildings are tall", outerTall, outer)
	}
}

func TestObstaclesKeepClearOfBuildings(t *testing.T) {
	p := DefaultSettings().CityParams()
	c := GenerateCity(p, MustDefaultTables(), NewRand(11))
	if len(c.Obstacles) == 0 {
		t.Fatal("no obstacles placed")
	}
	for _, o := range c.Obstacles {
		for _, b := range c.Buildings {
			if d := rectDist(b.Footprint(), o.Pos); d < p.ObstacleClearance {
				t.Fatalf("%s %.2f from %s", o.Kind, d, b.Archetype)
			}
		}
	}
}

func TestGenerateCityDeterministic(t *testing.T) {
	p := DefaultSettings().CityParams()
	a := GenerateCity(p, MustDefaultTables(), NewRand(3))
	b := GenerateCity(p, MustDefaultTables(), NewRand(3))
	if len(a.Buildings) != len(b.Buildings) || len(a.Obstacles) != len(b.Obstacles) {
		t.Fatal("same seed produced different layouts")
	}
	for i := range a.Buildings {
		if a.Buildings[i].Pos != b.Buildings[i].Pos || a.Buildings[i].Size != b.Buildings[i].Size {
			t.Fatalf("building %d differs", i)
		}
	}
}

func TestFixBuildingOverlapsSeparatesPairs(t *testing.T) {
	bs := []Building{
		{Pos: Vec3{0, 0, 0}},
		{Pos: Vec3{1, 0, 0}},
		{Pos: Vec3{0, 0, 0}},
		{Pos: Vec3{20, 0, 20}},
	}
	left := FixBuildingOverlaps(bs, 6, 50, 50)
	if left != 0 {
		t.Fatalf("%d pairs still overlap", left)
	}
	if bs[3].Pos != (Vec3{20, 0, 20}) {
		t.Fatalf("isolated building moved to %v", bs[3].Pos)
	}
}

func TestFixBuildingOverlapsReportsResidual(t *testing.T) {
	// Too many buildings for the space: the pass must stop and report.
	var bs []Building
	for i := 0; i < 10; i++ {
		bs = append(bs, Building{Pos: Vec3{float64(i) * 0.1, 0, 0}})
	}
	left := FixBuildingOverlaps(bs, 10, 5, 4)
	if left == 0 {
		t.Fatal("expected residual overlaps in a cramped area")
	}
	for _, b := range bs {
		if math.Abs(b.Pos[0]) > 5 || math.Abs(b.Pos[2]) > 5 {
			t.Fatalf("building pushed out of bounds: %v", b.Pos)
		}
	}
}

func TestCollapseShrinksOnceAndStaysGrounded(t *testing.T) {
	p := DefaultSettings().CityParams()
	p.CollapseChance = 1e6 // certain on the first frame
	b := Building{Archetype: "tower", Pos: Vec3{10, 0, 10}, Size: Vec3{4, 20, 4}, Collapsible: true}
	c := NewCity(p, []Building{b, {Pos: Vec3{-10, 0, -10}, Size: Vec3{4, 8, 4}}}, nil)
	events := NewEventBus()
	collapsed := 0
	events.Subscribe(EventBuildingCollapsed, func(Event) { collapsed++ })
	ps := NewParticleSystem(256, 1)
	r := NewRand(1)

	for i := 0; i < 200; i++ {
		c.Update(frame, r, events, ps)
	}
	got := c.Buildings[0]
	if collapsed != 1 {
		t.Fatalf("collapse events = %d, want 1", collapsed)
	}
	if !got.Collapsed {
		t.Fatal("building not marked collapsed")
	}
	if math.Abs(got.Size[1]-5) > 1e-6 {
		t.Fatalf("height = %v, want 5", got.Size[1])
	}
	if math.Abs(got.Pos[1]-got.Size[1]/2) > 1e-9 {
		t.Fatal("collapsed building not grounded")
	}
	if c.Buildings[1].Collapsed || c.Buildings[1].Size[1] != 8 {
		t.Fatal("non-collapsible building changed")
	}
	if len(ps.P) == 0 {
		t.Fatal("no dust spawned")
	}
}

func TestSafeSpotAvoidsGeometry(t *testing.T) {
	p := DefaultSettings().CityParams()
	c := GenerateCity(p, MustDefaultTables(), NewRand(21))
	r := NewRand(8)
	for i := 0; i < 50; i++ {
		pos := c.SafeSpot(r, 1.5, Vec3{}, SpawnMinDist)
		if c.Blocked(pos, 1.5) {
			t.Fatalf("spot %v is blocked", pos)
		}
		if HorizDist(pos, Vec3{}) < SpawnMinDist {
			t.Fatalf("spot %v too close to the player", pos)
		}
	}
}
