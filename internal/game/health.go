package game

// Health is the player's whole hit points. Current stays within [0, Max].
type Health struct {
	Current int
	Max     int
}

// NewHealth starts full. A snake always has at least one hit point.
func NewHealth(n int) Health {
	n = max(n, 1)
	return Health{Current: n, Max: n}
}

// Damage removes up to amount hit points and returns how many were lost.
func (h *Health) Damage(amount int) int {
	lost := min(max(amount, 0), h.Current)
	h.Current -= lost
	return lost
}

// Heal restores up to amount hit points and returns how many were gained.
func (h *Health) Heal(amount int) int {
	gained := min(max(amount, 0), h.Max-h.Current)
	h.Current += gained
	return gained
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return clampF(float64(h.Current)/float64(h.Max), 0, 1)
}

func (h *Health) IsDead() bool    { return h.Current <= 0 }
func (h *Health) IsInjured() bool { return h.Current < h.Max }

var (
	healthFull = RGB{R: 60, G: 220, B: 60}
	healthHalf = RGB{R: 220, G: 220, B: 60}
	healthLow  = RGB{R: 220, G: 60, B: 60}
)

// HealthBarColor fades green to yellow over the top half and yellow to red
// below it.
func HealthBarColor(frac float64) RGB {
	frac = clampF(frac, 0, 1)
	if frac >= 0.5 {
		return lerpRGB(healthHalf, healthFull, (frac-0.5)*2)
	}
	return lerpRGB(healthLow, healthHalf, frac*2)
}
