package game

import (
	"strings"
	"testing"
)

func findLine(lines []HUDLine, prefix string) (HUDLine, bool) {
	for _, l := range lines {
		if strings.HasPrefix(l.Text, prefix) {
			return l, true
		}
	}
	return HUDLine{}, false
}

func TestHUDLines(t *testing.T) {
	h := &HUDState{}
	h.SetScore(42)
	h.SetHealth(1, 3)
	h.SetCombo(3)
	h.ShowPowerUp(PowerUpSpeed, 10)

	lines := h.Lines()
	if l, ok := findLine(lines, "Score: 42"); !ok || l.Anchor != AnchorTopLeft {
		t.Fatalf("score line missing: %+v", lines)
	}
	hp, ok := findLine(lines, "HP [")
	if !ok || hp.Text != "HP [#..]" || hp.Col != HealthBarColor(1.0/3) {
		t.Fatalf("hp line = %+v", hp)
	}
	if _, ok := findLine(lines, "Combo x3"); !ok {
		t.Fatal("combo line missing")
	}
	if l, ok := findLine(lines, "SPEED 10.0s"); !ok || l.Anchor != AnchorBottom {
		t.Fatalf("power-up line = %+v", l)
	}
	if _, ok := findLine(lines, "GAME OVER"); ok {
		t.Fatal("game over shown while playing")
	}

	h.Tick(11)
	h.SetCombo(1)
	h.SetGameOver(true, 42)
	lines = h.Lines()
	if _, ok := findLine(lines, "SPEED"); ok {
		t.Fatal("expired power-up still shown")
	}
	if _, ok := findLine(lines, "Combo"); ok {
		t.Fatal("combo of one shown")
	}
	if _, ok := findLine(lines, "Final score: 42"); !ok {
		t.Fatal("final score missing")
	}
}

func TestHUDMessageExpires(t *testing.T) {
	h := &HUDState{}
	h.ShowMessage("hello", Palette.Milestone)
	h.Tick(hudMessageTime / 2)
	if h.Message != "hello" {
		t.Fatal("message gone too early")
	}
	h.Tick(hudMessageTime)
	if h.Message != "" {
		t.Fatal("message did not expire")
	}
}

func TestHealthBarColorFades(t *testing.T) {
	if got := HealthBarColor(1); got != healthFull {
		t.Fatalf("full = %v", got)
	}
	if got := HealthBarColor(0.5); got != healthHalf {
		t.Fatalf("half = %v", got)
	}
	if got := HealthBarColor(0); got != healthLow {
		t.Fatalf("empty = %v", got)
	}
	if got := HealthBarColor(-3); got != healthLow {
		t.Fatalf("below zero = %v", got)
	}
	mid := HealthBarColor(0.25)
	if mid.R != 220 || mid.G <= healthLow.G || mid.G >= healthHalf.G {
		t.Fatalf("quarter = %v", mid)
	}
}
