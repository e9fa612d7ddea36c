package game

import (
	"fmt"
	"strings"
)

// HUD is the display surface the game loop reports to. Front ends provide
// their own; NopHUD discards everything.
type HUD interface {
	SetScore(score int)
	SetHealth(current, max int)
	SetCombo(combo int)
	ShowPowerUp(kind PowerUpKind, duration float64)
	ShowMessage(text string, col RGB)
	SetGameOver(over bool, finalScore int)
}

type NopHUD struct{}

func (NopHUD) SetScore(int)                     {}
func (NopHUD) SetHealth(int, int)               {}
func (NopHUD) SetCombo(int)                     {}
func (NopHUD) ShowPowerUp(PowerUpKind, float64) {}
func (NopHUD) ShowMessage(string, RGB)          {}
func (NopHUD) SetGameOver(bool, int)            {}

const hudMessageTime = 2.0

// HUDState is a HUD that keeps what it was told, for front ends that redraw
// the whole overlay each frame.
type HUDState struct {
	Score      int
	Health     int
	MaxHealth  int
	Combo      int
	PowerUp    PowerUpKind
	PowerUpFor Countdown
	Message    string
	MessageCol RGB
	MessageFor Countdown
	GameOver   bool
	FinalScore int
}

func (h *HUDState) SetScore(score int)         { h.Score = score }
func (h *HUDState) SetHealth(current, max int) { h.Health, h.MaxHealth = current, max }
func (h *HUDState) SetCombo(combo int)         { h.Combo = combo }

func (h *HUDState) ShowPowerUp(kind PowerUpKind, duration float64) {
	h.PowerUp = kind
	h.PowerUpFor.Set(duration)
}

func (h *HUDState) ShowMessage(text string, col RGB) {
	h.Message = text
	h.MessageCol = col
	h.MessageFor.Set(hudMessageTime)
}

func (h *HUDState) SetGameOver(over bool, finalScore int) {
	h.GameOver = over
	h.FinalScore = finalScore
}

// Tick expires transient banners.
func (h *HUDState) Tick(dt float64) {
	if h.PowerUpFor.Tick(dt) {
		h.PowerUp = ""
	}
	if h.MessageFor.Tick(dt) {
		h.Message = ""
	}
}

// HUDAnchor is where a HUD line is placed on screen.
type HUDAnchor int

const (
	AnchorTopLeft HUDAnchor = iota
	AnchorTopRight
	AnchorCenter
	AnchorBottom
)

type HUDLine struct {
	Text   string
	Col    RGB
	Anchor HUDAnchor
}

// Lines lays the overlay out as text, top to bottom within each anchor.
func (h *HUDState) Lines() []HUDLine {
	white := RGB{R: 255, G: 255, B: 255}
	lines := []HUDLine{{Text: fmt.Sprintf("Score: %d", h.Score), Col: white, Anchor: AnchorTopLeft}}

	if h.MaxHealth > 0 {
		cur := clamp(h.Health, 0, h.MaxHealth)
		bar := strings.Repeat("#", cur) + strings.Repeat(".", h.MaxHealth-cur)
		col := HealthBarColor(float64(cur) / float64(h.MaxHealth))
		lines = append(lines, HUDLine{Text: "HP [" + bar + "]", Col: col, Anchor: AnchorTopLeft})
	}
	if h.Combo > 1 {
		lines = append(lines, HUDLine{Text: fmt.Sprintf("Combo x%d", h.Combo), Col: Palette.Combo, Anchor: AnchorTopRight})
	}
	if h.PowerUp != "" && h.PowerUpFor.Active() {
		text := fmt.Sprintf("%s %.1fs", strings.ToUpper(string(h.PowerUp)), h.PowerUpFor.Remaining())
		lines = append(lines, HUDLine{Text: text, Col: Palette.PowerUpMsg, Anchor: AnchorBottom})
	}
	if h.GameOver {
		lines = append(lines,
			HUDLine{Text: "GAME OVER", Col: Palette.Warning, Anchor: AnchorCenter},
			HUDLine{Text: fmt.Sprintf("Final score: %d", h.FinalScore), Col: white, Anchor: AnchorCenter},
		)
	}
	if h.Message != "" {
		lines = append(lines, HUDLine{Text: h.Message, Col: h.MessageCol, Anchor: AnchorCenter})
	}
	return lines
}
