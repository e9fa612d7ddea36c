package tui

import (
	"math"
	"testing"

	"snakecity/internal/game"
)

func TestViewportCellWorldRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, game.Vec3{10, 1, -6})
	for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 5}} {
		p := v.World(c[0], c[1])
		col, row, ok := v.Cell(p)
		if !ok || col != c[0] || row != c[1] {
			t.Fatalf("cell %v -> %v -> (%d,%d,%v)", c, p, col, row, ok)
		}
	}
	col, row, ok := v.Cell(v.Center)
	if !ok || col != 40 || row != 12 {
		t.Fatalf("centre maps to (%d,%d)", col, row)
	}
}

func TestViewportOrientation(t *testing.T) {
	v := NewViewport(40, 20, game.Vec3{})
	c0, r0, _ := v.Cell(game.Vec3{})
	cx, _, _ := v.Cell(game.Vec3{5, 0, 0})
	_, rz, _ := v.Cell(game.Vec3{0, 0, 4})
	if cx <= c0 {
		t.Fatal("+X is not to the right")
	}
	if rz >= r0 {
		t.Fatal("+Z is not up")
	}
	if _, _, ok := v.Cell(game.Vec3{100, 0, 0}); ok {
		t.Fatal("far point reported on screen")
	}
}

func TestViewportCellRectClips(t *testing.T) {
	v := NewViewport(20, 10, game.Vec3{})
	c0, r0, c1, r1, ok := v.CellRect(game.RectF{X0: -2, Z0: -2, X1: 2, Z1: 2})
	if !ok || c0 != 8 || c1 != 12 || r0 != 4 || r1 != 6 {
		t.Fatalf("rect cells (%d,%d)-(%d,%d) ok=%v", c0, r0, c1, r1, ok)
	}

	c0, r0, c1, r1, ok = v.CellRect(game.RectF{X0: -100, Z0: -100, X1: 100, Z1: 100})
	if !ok || c0 != 0 || r0 != 0 || c1 != 19 || r1 != 9 {
		t.Fatalf("huge rect not clipped to screen: (%d,%d)-(%d,%d)", c0, r0, c1, r1)
	}

	if _, _, _, _, ok := v.CellRect(game.RectF{X0: 50, Z0: 0, X1: 60, Z1: 4}); ok {
		t.Fatal("off-screen rect reported visible")
	}
}

func TestHeadGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '^'},
		{math.Pi / 2, '>'},
		{math.Pi, 'v'},
		{-math.Pi / 2, '<'},
		{0.3, '^'},
	}
	for _, tt := range tests {
		if got := headGlyph(tt.yaw); got != tt.want {
			t.Errorf("headGlyph(%.2f) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}
