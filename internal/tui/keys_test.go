package tui

import (
	"testing"
	"time"
)

func TestKeyStateHoldWindows(t *testing.T) {
	var k KeyState
	t0 := time.Unix(1000, 0)
	if k.Held(ActForward, t0) {
		t.Fatal("unpressed key held")
	}

	k.Press(ActForward, t0)
	if !k.Held(ActForward, t0.Add(500*time.Millisecond)) {
		t.Fatal("single press should bridge the auto-repeat delay")
	}
	if k.Held(ActForward, t0.Add(600*time.Millisecond)) {
		t.Fatal("single press held too long")
	}

	// Auto-repeat shortens the window.
	k.Press(ActForward, t0.Add(500*time.Millisecond))
	k.Press(ActForward, t0.Add(530*time.Millisecond))
	last := t0.Add(530 * time.Millisecond)
	if !k.Held(ActForward, last.Add(100*time.Millisecond)) {
		t.Fatal("repeating key dropped early")
	}
	if k.Held(ActForward, last.Add(200*time.Millisecond)) {
		t.Fatal("repeating key held after repeats stopped")
	}
}

func TestKeyStateRelease(t *testing.T) {
	var k KeyState
	now := time.Unix(1000, 0)
	k.Press(ActLeft, now)
	k.Release(ActLeft)
	if k.Held(ActLeft, now) {
		t.Fatal("released key still held")
	}
	if k.Held(ActRight, now) {
		t.Fatal("other action affected")
	}
}
