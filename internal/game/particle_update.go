package game

import "math"

const (
	particleGravity   = 9.8
	particleBounce    = 0.3
	particleGroundFr  = 0.6
	particleDustDrag  = 1.4
	particleSparkDrag = 2.5
)

// Update advances every particle and swap-removes the expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	dustDecay := math.Exp(-particleDustDrag * dt)
	sparkDecay := math.Exp(-particleSparkDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life < 0 {
			i++
			continue
		}
		if p.Life >= p.MaxLife {
			last := len(ps.P) - 1
			ps.P[i] = ps.P[last]
			ps.P = ps.P[:last]
			if ps.ovrIdx > len(ps.P) {
				ps.ovrIdx = 0
			}
			continue
		}

		switch p.Kind {
		case ParticleBurst:
			p.Vel[1] -= particleGravity * dt
		case ParticleDust:
			p.Vel = p.Vel.Mul(dustDecay)
			p.Size += dt * 0.8
		case ParticleSpark:
			p.Vel = p.Vel.Mul(sparkDecay)
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))

		if p.Pos[1] < 0 {
			p.Pos[1] = 0
			if p.Vel[1] < 0 {
				p.Vel[1] = -p.Vel[1] * particleBounce
			}
			p.Vel[0] *= particleGroundFr
			p.Vel[2] *= particleGroundFr
		}
		i++
	}
}
