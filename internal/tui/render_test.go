package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakecity/internal/game"
)

type cell struct {
	r  rune
	st tcell.Style
}

// fakeCanvas records what was drawn.
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[[2]int{x, y}] = cell{r, st}
}

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		r := c.cells[[2]int{x, y}].r
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func testGame(t *testing.T) (*game.Game, *game.HUDState) {
	t.Helper()
	hud := &game.HUDState{}
	return game.NewGame(game.DefaultSettings(), nil, 7, hud), hud
}

func TestDrawHeadAtCentre(t *testing.T) {
	g, hud := testGame(t)
	c := newFakeCanvas(80, 24)
	draw(c, g, hud)

	if got := c.cells[[2]int{40, 12}].r; got != '^' {
		t.Fatalf("centre cell = %q, want head facing up", got)
	}
	if !strings.Contains(c.row(0), "Score: 0") {
		t.Fatalf("top row %q has no score", c.row(0))
	}
	if !strings.Contains(c.row(1), "HP [") {
		t.Fatalf("second row %q has no health bar", c.row(1))
	}
}

func TestDrawGameOverCentred(t *testing.T) {
	g, hud := testGame(t)
	hud.SetGameOver(true, 42)
	c := newFakeCanvas(60, 20)
	draw(c, g, hud)

	found := false
	for y := 0; y < c.h; y++ {
		if strings.Contains(c.row(y), "Final score: 42") {
			found = true
			if y < c.h/4 || y > 3*c.h/4 {
				t.Fatalf("final score on row %d", y)
			}
		}
	}
	if !found {
		t.Fatal("final score not drawn")
	}
}

func TestDrawEmptyCanvas(t *testing.T) {
	g, hud := testGame(t)
	c := newFakeCanvas(0, 0)
	draw(c, g, hud)
	if len(c.cells) != 0 {
		t.Fatal("drew on an empty canvas")
	}
}

func TestControlsFromKeys(t *testing.T) {
	var k KeyState
	now := time.Unix(1000, 0)
	k.Press(ActForward, now)
	k.Press(ActTurnRight, now)

	c := controls(&k, now.Add(10*time.Millisecond))
	if !c.Forward || c.Back || c.Boost {
		t.Fatalf("controls %+v", c)
	}
	if c.MouseDX != turnPixels {
		t.Fatalf("MouseDX = %v, want %v", c.MouseDX, turnPixels)
	}

	c = controls(&k, now.Add(time.Second))
	if c.Forward || c.MouseDX != 0 {
		t.Fatalf("stale keys still active: %+v", c)
	}
}

func TestHandleKey(t *testing.T) {
	var k KeyState
	var edge game.Controls
	now := time.Unix(1000, 0)

	if handleKey(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), &k, &edge, now) {
		t.Fatal("W quit")
	}
	if !k.Held(ActForward, now) || !k.Held(ActBoost, now) {
		t.Fatal("shifted W should move forward and boost")
	}

	handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), &k, &edge, now)
	if k.Held(ActForward, now) || !k.Held(ActBack, now) {
		t.Fatal("down should cancel forward")
	}

	handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), &k, &edge, now)
	handleKey(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), &k, &edge, now)
	if !edge.Restart || !edge.CameraFirst || edge.CameraThird {
		t.Fatalf("edge controls %+v", edge)
	}

	if !handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &k, &edge, now) {
		t.Fatal("escape did not quit")
	}
}
