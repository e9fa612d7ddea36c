package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a world-space position or direction. Y is up; the ground plane is XZ.
type Vec3 = mgl64.Vec3

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// runSeed derives the seed for the n-th run of a session.
func runSeed(seed uint64, run int) uint64 {
	return splitmix64(seed ^ uint64(run)*0x9E3779B185EBCA87)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func angDiff(a, b float64) float64 {
	d := b - a
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// AngDiff returns the signed shortest rotation from a to b in radians.
func AngDiff(a, b float64) float64 { return angDiff(a, b) }

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// flat drops the vertical component.
func flat(v Vec3) Vec3 { return Vec3{v[0], 0, v[2]} }

// HorizDist is the distance between a and b on the ground plane.
func HorizDist(a, b Vec3) float64 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// dirTo returns the unit ground-plane direction from a to b, or the zero
// vector when the points coincide.
func dirTo(a, b Vec3) Vec3 {
	d := flat(b.Sub(a))
	l := d.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return d.Mul(1 / l)
}

// YawOf returns the heading of dir. Yaw 0 faces +Z, positive yaw turns toward +X.
func YawOf(dir Vec3) float64 {
	return math.Atan2(dir[0], dir[2])
}

// ForwardFromYaw is the unit ground-plane vector for a heading.
func ForwardFromYaw(yaw float64) Vec3 {
	return Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// RightFromYaw is the unit ground-plane vector to the right of a heading.
func RightFromYaw(yaw float64) Vec3 {
	return Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

func lerpVec(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Dir returns a random unit direction on the ground plane.
func (r *Rand) Dir() Vec3 {
	a := r.RangeF(0, 2*math.Pi)
	return Vec3{math.Sin(a), 0, math.Cos(a)}
}

// Weighted picks an index with probability proportional to its weight.
// Non-positive weights are never picked; all-zero weights pick index 0.
func (r *Rand) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	n := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
