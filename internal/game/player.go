package game

import (
	"math"
	"sort"
)

// Snake is the player: a head driven by input and a trail of body segments.
type Snake struct {
	ID        EntityID
	Pos       Vec3
	Yaw       float64
	BaseSpeed float64
	Speed     float64 // effective speed after boost and power-ups
	HP        Health
	Trail     *SegmentTrail

	Combo          int
	ComboTimer     Countdown
	DamageCooldown Countdown
	Flash          Countdown

	Effects         map[PowerUpKind]Countdown
	Invisible       bool
	CanJump         bool
	DisableMovement bool
	CrazyMode       bool
	Boosting        bool

	// Phasing lets the head walk out of geometry it was left inside when
	// invisibility ran out or a crossing landed; cleared once it is clear.
	Phasing bool

	Airborne    bool
	VerticalVel float64

	Crossing   Tween   // bridge traversal path
	CrossApex  float64 // arc height above the straight path
	crossTimer Countdown

	Alive bool

	cfg Settings
}

func NewSnake(s Settings) *Snake {
	return &Snake{
		ID:        newID(),
		Pos:       Vec3{0, GroundY, 0},
		BaseSpeed: s.BaseSpeed,
		Speed:     s.BaseSpeed,
		HP:        NewHealth(s.MaxHealth),
		Trail:     NewSegmentTrail(s.SegmentSpacing, s.HistoryBuffer, s.TrailSmoothing, s.SampleInterval),
		Effects:   make(map[PowerUpKind]Countdown),
		Alive:     true,
		cfg:       s,
	}
}

func (s *Snake) Forward() Vec3 { return ForwardFromYaw(s.Yaw) }
func (s *Snake) Right() Vec3   { return RightFromYaw(s.Yaw) }

// Steer applies mouse look and, in crazy mode, keyboard rotation.
func (s *Snake) Steer(c Controls, dt float64) {
	s.Yaw += c.MouseDX * s.cfg.MouseSensitivity
	if s.CrazyMode {
		if c.Right {
			s.Yaw += s.cfg.TurnRate * dt
		}
		if c.Left {
			s.Yaw -= s.cfg.TurnRate * dt
		}
	}
	for s.Yaw > math.Pi {
		s.Yaw -= 2 * math.Pi
	}
	for s.Yaw < -math.Pi {
		s.Yaw += 2 * math.Pi
	}
}

// MoveIntent is the unit direction the held keys ask for, or zero.
func (s *Snake) MoveIntent(c Controls) Vec3 {
	var d Vec3
	if c.Forward {
		d = d.Add(s.Forward())
	}
	if c.Back {
		d = d.Sub(s.Forward())
	}
	if !s.CrazyMode {
		if c.Right {
			d = d.Add(s.Right())
		}
		if c.Left {
			d = d.Sub(s.Right())
		}
	}
	l := d.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return d.Mul(1 / l)
}

// updateSpeed recomputes Speed from base speed, boost and the speed effect.
func (s *Snake) updateSpeed(c Controls) {
	mult := 1.0
	if _, ok := s.Effects[PowerUpSpeed]; ok {
		mult *= s.cfg.SpeedPowerUp
	}
	s.Boosting = c.Boost
	if s.Boosting {
		mult *= s.cfg.BoostMultiplier
	}
	s.Speed = s.BaseSpeed * math.Min(mult, s.cfg.MaxSpeedFactor)
}

// updateJump starts a jump when allowed and integrates vertical motion.
func (s *Snake) updateJump(c Controls, dt float64) {
	if c.Jump && s.CanJump && !s.Airborne {
		s.Airborne = true
		s.VerticalVel = s.cfg.JumpVelocity
	}
	if !s.Airborne {
		s.Pos[1] = GroundY
		return
	}
	s.VerticalVel -= s.cfg.Gravity * dt
	s.Pos[1] += s.VerticalVel * dt
	if s.Pos[1] <= GroundY {
		s.Pos[1] = GroundY
		s.Airborne = false
		s.VerticalVel = 0
	}
}

// Grow adds a body segment and makes the head slightly faster.
func (s *Snake) Grow() Segment {
	seg := s.Trail.Grow(s.Pos, s.Forward())
	s.BaseSpeed += s.cfg.GrowthSpeedGain
	return seg
}

// ApplyPowerUp starts or refreshes a timed effect, or applies an instant one
// when duration <= 0. It reports whether an active effect was refreshed.
func (s *Snake) ApplyPowerUp(kind PowerUpKind, duration float64) bool {
	if kind == PowerUpHealth || duration <= 0 {
		if kind == PowerUpHealth {
			s.HP.Heal(1)
		}
		return false
	}
	_, active := s.Effects[kind]
	s.Effects[kind] = Countdown(duration)
	s.setEffect(kind, true)
	return active
}

func (s *Snake) setEffect(kind PowerUpKind, on bool) {
	switch kind {
	case PowerUpInvisibility:
		s.Invisible = on
		if !on {
			s.Phasing = true
		}
	case PowerUpJump:
		s.CanJump = on
	}
}

// tickEffects counts down timed effects and returns the kinds that expired
// this frame, sorted for stable event order.
func (s *Snake) tickEffects(dt float64) []PowerUpKind {
	var expired []PowerUpKind
	for kind, cd := range s.Effects {
		if cd.Tick(dt) || !cd.Active() {
			delete(s.Effects, kind)
			s.setEffect(kind, false)
			expired = append(expired, kind)
			continue
		}
		s.Effects[kind] = cd
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// EffectRemaining returns seconds left on a timed effect.
func (s *Snake) EffectRemaining(kind PowerUpKind) float64 {
	return s.Effects[kind].Remaining()
}

// registerEat bumps the combo and returns its value before the bump.
func (s *Snake) registerEat() int {
	before := s.Combo
	s.Combo++
	s.ComboTimer.Set(s.cfg.ComboTimeout)
	return before
}

// tickCombo reports true on the frame an idle combo resets to zero.
func (s *Snake) tickCombo(dt float64) bool {
	if s.ComboTimer.Tick(dt) && s.Combo > 0 {
		s.Combo = 0
		return true
	}
	return false
}

// takeDamage removes n hit points and starts the cooldown and red flash.
func (s *Snake) takeDamage(n int) {
	s.HP.Damage(n)
	s.DamageCooldown.Set(s.cfg.DamageCooldown)
	s.Flash.Set(s.cfg.FlashTime)
}

// knockback shoves the head dist units along the unit vector dir.
func (s *Snake) knockback(dir Vec3, dist float64) {
	s.Pos = s.Pos.Add(dir.Mul(dist))
}

// startCrossing locks input and carries the head along an arc to the far side.
func (s *Snake) startCrossing(to Vec3, apex, duration float64) {
	to[1] = GroundY
	s.Crossing = NewTween(s.Pos, to, duration, EaseInOutSine)
	s.CrossApex = apex
	s.crossTimer.Set(duration)
	s.DisableMovement = true
	s.Airborne = false
	s.VerticalVel = 0
}

// IsCrossing reports whether a bridge traversal is in progress.
func (s *Snake) IsCrossing() bool { return s.crossTimer.Active() }

func (s *Snake) updateCrossing(dt float64) {
	if !s.crossTimer.Active() {
		return
	}
	p, _ := s.Crossing.Step(dt)
	p[1] += math.Sin(math.Pi*s.Crossing.Progress()) * s.CrossApex
	s.Pos = p
	if s.crossTimer.Tick(dt) {
		s.Pos = s.Crossing.To
		s.DisableMovement = false
		s.Phasing = true
	}
}

// HeadColor is the tint the head is drawn with this frame.
func (s *Snake) HeadColor() RGB {
	switch {
	case s.Flash.Active():
		return Palette.Flash
	case s.Invisible:
		return Palette.Ghost
	default:
		return Palette.Head
	}
}

// comboMilestone labels notable combo counts.
func comboMilestone(combo int) (string, RGB) {
	switch combo {
	case 2:
		return "DOUBLE BITE", RGB{R: 255, G: 220, B: 50}
	case 3:
		return "TRIPLE BITE", RGB{R: 255, G: 220, B: 50}
	case 4:
		return "MULTI BITE", RGB{R: 255, G: 120, B: 20}
	case 5:
		return "MEGA BITE", RGB{R: 255, G: 120, B: 20}
	case 6:
		return "ULTRA BITE", RGB{R: 255, G: 120, B: 20}
	case 7:
		return "FEEDING FRENZY", RGB{R: 255, G: 40, B: 200}
	case 8:
		return "MONSTER APPETITE", RGB{R: 255, G: 40, B: 200}
	case 9:
		return "LUDICROUS HUNGER", RGB{R: 255, G: 40, B: 200}
	}
	if combo >= 10 && combo%5 == 0 {
		return "UNSTOPPABLE", RGB{R: 255, G: 255, B: 255}
	}
	return "", RGB{}
}
