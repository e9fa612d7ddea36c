package game

import "math"

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseInOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Tween interpolates a vector over a fixed duration. The owner steps it
// every frame; there are no scheduled callbacks.
type Tween struct {
	From, To Vec3
	Duration float64
	Elapsed  float64
	Ease     EaseFunc
}

func NewTween(from, to Vec3, duration float64, ease EaseFunc) Tween {
	if ease == nil {
		ease = EaseLinear
	}
	return Tween{From: from, To: to, Duration: duration, Ease: ease}
}

// Active reports whether the tween still has time left.
func (t *Tween) Active() bool {
	return t.Duration > 0 && t.Elapsed < t.Duration
}

// Progress returns eased progress in [0,1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := clampF(t.Elapsed/t.Duration, 0, 1)
	if t.Ease == nil {
		return p
	}
	return t.Ease(p)
}

// Step advances the tween and returns the current value and whether it finished
// during this step.
func (t *Tween) Step(dt float64) (Vec3, bool) {
	if !t.Active() {
		return t.To, false
	}
	t.Elapsed += dt
	v := lerpVec(t.From, t.To, t.Progress())
	return v, t.Elapsed >= t.Duration
}
