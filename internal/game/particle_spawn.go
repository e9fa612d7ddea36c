package game

// SpawnBurst throws coloured chunks out of pos, used when an enemy is eaten.
func (ps *ParticleSystem) SpawnBurst(pos Vec3, col RGB, count int) {
	r := ps.rand
	for range count {
		dir := r.Dir()
		spd := r.RangeF(2, 6)
		ps.Add(Particle{
			Pos:     pos,
			Vel:     Vec3{dir[0] * spd, r.RangeF(2, 6), dir[2] * spd},
			Size:    r.RangeF(0.15, 0.35),
			MaxLife: r.RangeF(0.5, 1.1),
			Col:     col.Add(r.Range(-20, 20), r.Range(-20, 20), r.Range(-20, 20)),
			Kind:    ParticleBurst,
		})
	}
}

// SpawnDust raises a cloud around a collapsing footprint of the given half sizes.
func (ps *ParticleSystem) SpawnDust(pos Vec3, hx, hz float64, count int) {
	r := ps.rand
	for i := range count {
		p := Vec3{pos[0] + r.RangeF(-hx, hx), r.RangeF(0.2, 1.5), pos[2] + r.RangeF(-hz, hz)}
		out := dirTo(pos, p)
		ps.Add(Particle{
			Pos:     p,
			Vel:     Vec3{out[0] * r.RangeF(0.5, 2), r.RangeF(0.3, 1.2), out[2] * r.RangeF(0.5, 2)},
			Size:    r.RangeF(0.6, 1.4),
			Life:    -float64(i%6) * 0.08,
			MaxLife: r.RangeF(1.2, 2.4),
			Col:     Palette.Dust.Add(r.Range(-15, 15), r.Range(-15, 15), r.Range(-15, 15)),
			Kind:    ParticleDust,
		})
	}
}

// SpawnSparks is a short ring of glints, used for pickups.
func (ps *ParticleSystem) SpawnSparks(pos Vec3, col RGB, count int) {
	r := ps.rand
	for range count {
		dir := r.Dir()
		ps.Add(Particle{
			Pos:     pos,
			Vel:     Vec3{dir[0] * 3, r.RangeF(0.5, 2.5), dir[2] * 3},
			Size:    r.RangeF(0.1, 0.2),
			MaxLife: r.RangeF(0.3, 0.6),
			Col:     col,
			Kind:    ParticleSpark,
		})
	}
}
