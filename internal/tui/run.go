// Package tui plays the game top-down in a terminal.
package tui

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakecity/internal/game"
)

const (
	frameInterval = 16 * time.Millisecond
	turnPixels    = 6.0 // mouse-equivalent look delta per frame while turning
)

// controls maps held actions to one frame of input.
func controls(k *KeyState, now time.Time) game.Controls {
	c := game.Controls{
		Forward: k.Held(ActForward, now),
		Back:    k.Held(ActBack, now),
		Left:    k.Held(ActLeft, now),
		Right:   k.Held(ActRight, now),
		Boost:   k.Held(ActBoost, now),
		Jump:    k.Held(ActJump, now),
	}
	if k.Held(ActTurnLeft, now) {
		c.MouseDX -= turnPixels
	}
	if k.Held(ActTurnRight, now) {
		c.MouseDX += turnPixels
	}
	return c
}

// handleKey records a key press. Edge actions go straight into edge;
// quit reports whether the player asked to leave.
func handleKey(ev *tcell.EventKey, k *KeyState, edge *game.Controls, now time.Time) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		k.Release(ActBack)
		k.Press(ActForward, now)
	case tcell.KeyDown:
		k.Release(ActForward)
		k.Press(ActBack, now)
	case tcell.KeyLeft:
		k.Release(ActTurnRight)
		k.Press(ActTurnLeft, now)
	case tcell.KeyRight:
		k.Release(ActTurnLeft)
		k.Press(ActTurnRight, now)
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'w', 'W':
			k.Release(ActBack)
			k.Press(ActForward, now)
		case 's', 'S':
			k.Release(ActForward)
			k.Press(ActBack, now)
		case 'a', 'A':
			k.Release(ActRight)
			k.Press(ActLeft, now)
		case 'd', 'D':
			k.Release(ActLeft)
			k.Press(ActRight, now)
		case 'q':
			k.Release(ActTurnRight)
			k.Press(ActTurnLeft, now)
		case 'e':
			k.Release(ActTurnLeft)
			k.Press(ActTurnRight, now)
		case ' ':
			k.Press(ActJump, now)
		case 'r':
			edge.Restart = true
		case 'c':
			edge.ToggleCrazy = true
		case '1':
			edge.CameraFirst = true
		case '3':
			edge.CameraThird = true
		}
		// Shifted movement letters boost.
		switch r {
		case 'W', 'A', 'S', 'D':
			k.Press(ActBoost, now)
		}
	}
	return false
}

// pollEvents forwards terminal events until the screen closes or done is
// closed.
func pollEvents(screen eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// Run plays in the terminal until Escape or Ctrl-C.
func Run(settings game.Settings, tables *game.Tables, seed uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Restore the terminal even if the game panics.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snakecity crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	hud := &game.HUDState{}
	g := game.NewGame(settings, tables, seed, hud)
	game.LogEvents(g.Events)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var keys KeyState
	var edge game.Controls
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if handleKey(ev, &keys, &edge, time.Now()) {
					log.Printf("tui: quit on run %d, best score %d", g.Session.Run, g.Session.BestScore)
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > 0.1 {
				dt = 0.1
			}
			c := controls(&keys, now)
			c.Restart, c.ToggleCrazy = edge.Restart, edge.ToggleCrazy
			c.CameraFirst, c.CameraThird = edge.CameraFirst, edge.CameraThird
			edge = game.Controls{}

			g.Update(dt, c)
			hud.Tick(dt)

			screen.Clear()
			draw(screen, g, hud)
			screen.Show()
		}
	}
}
