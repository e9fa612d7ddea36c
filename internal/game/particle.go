package game

type ParticleKind uint8

const (
	ParticleBurst ParticleKind = iota // eaten enemy pieces, fall under gravity
	ParticleDust                      // collapse dust, rises and spreads
	ParticleSpark                     // pickup sparkle, no gravity
)

type Particle struct {
	Pos  Vec3
	Vel  Vec3
	Size float64

	Life    float64 // seconds alive; negative means delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rand   *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = DefaultSettings().MaxParticles
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		rand: NewRand(seed ^ 0x9A27C1E5),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Alpha returns the fade for a particle at its current age.
func (p *Particle) Alpha() float64 {
	if p.Life < 0 || p.MaxLife <= 0 {
		return 0
	}
	t := clampF(p.Life/p.MaxLife, 0, 1)
	switch p.Kind {
	case ParticleDust:
		fadeIn := clampF(t/0.15, 0, 1)
		return (1 - t) * fadeIn * 0.8
	case ParticleSpark:
		return (1 - t) * 1.1
	default:
		return 1 - t*t
	}
}

// RenderData packs live particles as [x, y, z, size, r, g, b, a] * N.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		r, g, b := p.Col.Floats()
		buf = append(buf,
			float32(p.Pos[0]), float32(p.Pos[1]), float32(p.Pos[2]),
			float32(p.Size),
			r, g, b, float32(clampF(a, 0, 1)),
		)
	}
	return buf
}
