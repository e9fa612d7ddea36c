package game

type CameraMode int

const (
	CameraThirdPerson CameraMode = iota
	CameraFirstPerson
)

const (
	cameraDistance  = 10.0
	cameraHeight    = 5.0
	cameraEyeHeight = 1.5
	cameraFollow    = 8.0 // per-second smoothing toward the desired eye
)

type Camera struct {
	Mode   CameraMode
	Eye    Vec3
	Target Vec3

	// Screen shake.
	Shake          Vec3    // current offset
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude

	placed bool
}

// Follow places the camera relative to the head. Third person trails behind
// and above; first person sits just above the head looking forward.
func (c *Camera) Follow(s *Snake, dt float64) {
	if s == nil {
		return
	}
	fwd := s.Forward()
	var eye, target Vec3
	switch c.Mode {
	case CameraFirstPerson:
		eye = s.Pos.Add(Vec3{0, cameraEyeHeight, 0})
		target = eye.Add(fwd)
		c.Eye, c.Target, c.placed = eye, target, true
		return
	default:
		eye = s.Pos.Sub(fwd.Mul(cameraDistance)).Add(Vec3{0, cameraHeight, 0})
		target = s.Pos
	}
	if !c.placed {
		c.Eye, c.Target, c.placed = eye, target, true
		return
	}
	k := clampF(dt*cameraFollow, 0, 1)
	c.Eye = lerpVec(c.Eye, eye, k)
	c.Target = lerpVec(c.Target, target, k)
}

// SetMode switches view and snaps to the new placement on the next Follow.
func (c *Camera) SetMode(m CameraMode) {
	if c.Mode != m {
		c.Mode = m
		c.placed = false
	}
}

// Reset drops shake and snaps to the player on the next Follow.
func (c *Camera) Reset() {
	c.placed = false
	c.Shake = Vec3{}
	c.ShakeTimer = 0
	c.ShakeIntensity = 0
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.Shake = Vec3{}
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.Shake = Vec3{rr.RangeF(-mag, mag), rr.RangeF(-mag, mag), rr.RangeF(-mag, mag)}
}

// View returns eye and target with shake applied.
func (c *Camera) View() (eye, target Vec3) {
	return c.Eye.Add(c.Shake), c.Target.Add(c.Shake)
}
