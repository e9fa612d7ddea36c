package game

import "math"

// Hit describes the nearest thing a ray touched.
type Hit struct {
	Hit      bool
	Kind     EntityKind
	ID       EntityID
	Slot     int
	Distance float64
	Point    Vec3
	Normal   Vec3
}

// ShapeKind selects how a Shape is tested.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

// Shape is a sphere (Center, Radius) or an axis-aligned box (Center, Half).
type Shape struct {
	Kind   ShapeKind
	Center Vec3
	Radius float64
	Half   Vec3
}

func Sphere(c Vec3, r float64) Shape { return Shape{Kind: ShapeSphere, Center: c, Radius: r} }

func Box(c, half Vec3) Shape { return Shape{Kind: ShapeBox, Center: c, Half: half} }

// SpatialQuery answers the geometric questions gameplay asks of the world.
type SpatialQuery interface {
	// Raycast returns the nearest static geometry hit along dir within
	// maxDist, skipping ids in ignore.
	Raycast(origin, dir Vec3, maxDist float64, ignore ...EntityID) Hit
	// Overlap reports whether a and b intersect and the distance between
	// their centres.
	Overlap(a, b Shape) (bool, float64)
}

// WorldQuery implements SpatialQuery over a City.
type WorldQuery struct {
	City *City
}

func NewWorldQuery(c *City) *WorldQuery { return &WorldQuery{City: c} }

func (q *WorldQuery) Raycast(origin, dir Vec3, maxDist float64, ignore ...EntityID) Hit {
	best := Hit{Distance: maxDist}
	l := dir.Len()
	if q.City == nil || l < 1e-12 || maxDist <= 0 {
		return Hit{}
	}
	dir = dir.Mul(1 / l)
	end := origin.Add(dir.Mul(maxDist))

	for _, ref := range q.City.Near(segmentRect(origin, end).Expand(0.01)) {
		if ignored(ref.ID, ignore) {
			continue
		}
		var lo, hi Vec3
		switch ref.Kind {
		case KindBuilding:
			b := &q.City.Buildings[ref.Slot]
			lo, hi = b.Min(), b.Max()
		case KindObstacle:
			o := &q.City.Obstacles[ref.Slot]
			lo, hi = o.Min(), o.Max()
		default:
			continue
		}
		t, _, n, ok := RayAABB(origin, dir, lo, hi)
		if !ok || t > best.Distance {
			continue
		}
		best = Hit{
			Hit:      true,
			Kind:     ref.Kind,
			ID:       ref.ID,
			Slot:     ref.Slot,
			Distance: t,
			Point:    origin.Add(dir.Mul(t)),
			Normal:   n,
		}
	}
	if !best.Hit {
		return Hit{}
	}
	return best
}

func ignored(id EntityID, ignore []EntityID) bool {
	for _, x := range ignore {
		if x == id {
			return true
		}
	}
	return false
}

// RayAABB intersects a ray with a box using the slab method. dir must be unit
// length. It returns the entry and exit distances and the entry face normal.
// A ray starting inside the box enters at 0.
func RayAABB(origin, dir, lo, hi Vec3) (tEnter, tExit float64, normal Vec3, ok bool) {
	tEnter = math.Inf(-1)
	tExit = math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, 0, Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tEnter {
			tEnter = t1
			normal = Vec3{}
			normal[axis] = sign
		}
		if t2 < tExit {
			tExit = t2
		}
	}
	if tExit < math.Max(tEnter, 0) {
		return 0, 0, Vec3{}, false
	}
	if tEnter < 0 {
		tEnter = 0
		normal = dir.Mul(-1)
	}
	return tEnter, tExit, normal, true
}

func (q *WorldQuery) Overlap(a, b Shape) (bool, float64) {
	d := a.Center.Sub(b.Center).Len()
	switch {
	case a.Kind == ShapeSphere && b.Kind == ShapeSphere:
		return d < a.Radius+b.Radius, d
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		for axis := 0; axis < 3; axis++ {
			if math.Abs(a.Center[axis]-b.Center[axis]) >= a.Half[axis]+b.Half[axis] {
				return false, d
			}
		}
		return true, d
	case a.Kind == ShapeSphere:
		return sphereBox(a, b), d
	default:
		return sphereBox(b, a), d
	}
}

func sphereBox(s, b Shape) bool {
	var sq float64
	for axis := 0; axis < 3; axis++ {
		lo := b.Center[axis] - b.Half[axis]
		hi := b.Center[axis] + b.Half[axis]
		c := clampF(s.Center[axis], lo, hi)
		diff := s.Center[axis] - c
		sq += diff * diff
	}
	return sq < s.Radius*s.Radius
}
