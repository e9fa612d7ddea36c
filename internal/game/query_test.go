package game

import (
	"math"
	"testing"
)

func testCity() *City {
	p := DefaultSettings().CityParams()
	return NewCity(p,
		[]Building{
			{ID: "near", Pos: Vec3{0, 0, 5}, Size: Vec3{2, 4, 2}},
			{ID: "far", Pos: Vec3{0, 0, 10}, Size: Vec3{2, 4, 2}},
		},
		[]Obstacle{
			{ID: "bench", Kind: "bench", Pos: Vec3{5, 0, 0}, Size: Vec3{1, 1, 1}},
		})
}

func TestRaycastNearestHit(t *testing.T) {
	q := NewWorldQuery(testCity())
	h := q.Raycast(Vec3{0, 1, 0}, Vec3{0, 0, 1}, 20)
	if !h.Hit || h.ID != "near" || h.Kind != KindBuilding {
		t.Fatalf("hit = %+v, want near building", h)
	}
	if math.Abs(h.Distance-4) > 1e-9 {
		t.Fatalf("distance = %v, want 4", h.Distance)
	}
	if h.Normal != (Vec3{0, 0, -1}) {
		t.Fatalf("normal = %v", h.Normal)
	}
}

func TestRaycastIgnoreAndRange(t *testing.T) {
	q := NewWorldQuery(testCity())
	h := q.Raycast(Vec3{0, 1, 0}, Vec3{0, 0, 1}, 20, "near")
	if !h.Hit || h.ID != "far" {
		t.Fatalf("hit = %+v, want far building", h)
	}
	if h := q.Raycast(Vec3{0, 1, 0}, Vec3{0, 0, 1}, 3.5); h.Hit {
		t.Fatalf("hit beyond max distance: %+v", h)
	}
	if h := q.Raycast(Vec3{0, 1, 0}, Vec3{0, 0, -1}, 20); h.Hit {
		t.Fatalf("hit behind the origin: %+v", h)
	}
}

func TestRaycastObstacleAndHeight(t *testing.T) {
	q := NewWorldQuery(testCity())
	h := q.Raycast(Vec3{0, 0.5, 0}, Vec3{1, 0, 0}, 10)
	if !h.Hit || h.Kind != KindObstacle {
		t.Fatalf("hit = %+v, want obstacle", h)
	}
	if h := q.Raycast(Vec3{0, 2, 0}, Vec3{1, 0, 0}, 10); h.Hit {
		t.Fatalf("ray above the obstacle still hit: %+v", h)
	}
}

func TestRayAABBFromInside(t *testing.T) {
	tEnter, tExit, _, ok := RayAABB(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{-1, -1, -1}, Vec3{2, 1, 1})
	if !ok || tEnter != 0 || math.Abs(tExit-2) > 1e-9 {
		t.Fatalf("enter %v exit %v ok %v", tEnter, tExit, ok)
	}
}

func TestOverlapShapes(t *testing.T) {
	q := NewWorldQuery(nil)
	cases := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"spheres touching", Sphere(Vec3{}, 1), Sphere(Vec3{1.5, 0, 0}, 1), true},
		{"spheres apart", Sphere(Vec3{}, 1), Sphere(Vec3{2.5, 0, 0}, 1), false},
		{"boxes", Box(Vec3{}, Vec3{1, 1, 1}), Box(Vec3{1.5, 0, 0}, Vec3{1, 1, 1}), true},
		{"boxes apart", Box(Vec3{}, Vec3{1, 1, 1}), Box(Vec3{0, 3, 0}, Vec3{1, 1, 1}), false},
		{"sphere box corner", Sphere(Vec3{1.5, 1.5, 0}, 0.6), Box(Vec3{}, Vec3{1, 1, 1}), false},
		{"box sphere face", Box(Vec3{}, Vec3{1, 1, 1}), Sphere(Vec3{0, 0, 1.4}, 0.5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, d := q.Overlap(tc.a, tc.b)
			if got != tc.want {
				t.Fatalf("overlap = %v, want %v", got, tc.want)
			}
			if want := tc.a.Center.Sub(tc.b.Center).Len(); math.Abs(d-want) > 1e-9 {
				t.Fatalf("distance = %v, want %v", d, want)
			}
		})
	}
}

func TestQuadTreeQuery(t *testing.T) {
	root := NewQuadNode(RectF{X0: -100, Z0: -100, X1: 100, Z1: 100}, 0)
	for i := 0; i < 200; i++ {
		x := float64(i%20)*10 - 95
		z := float64(i/20)*10 - 95
		root.Insert(EntityRef{ID: EntityID(rune('a' + i%26)), Slot: i}, RectF{X0: x - 1, Z0: z - 1, X1: x + 1, Z1: z + 1})
	}
	if root.Count() != 200 {
		t.Fatalf("count = %d", root.Count())
	}
	var out []EntityRef
	root.Query(RectF{X0: -96, Z0: -96, X1: -84, Z1: -84}, &out)
	if len(out) != 4 {
		t.Fatalf("query returned %d entries, want 4", len(out))
	}
}
