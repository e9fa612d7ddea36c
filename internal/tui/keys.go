package tui

import "time"

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a short window after its last press. The first
// window is long enough to bridge the auto-repeat delay.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 150 * time.Millisecond
)

type Action int

const (
	ActForward Action = iota
	ActBack
	ActLeft
	ActRight
	ActTurnLeft
	ActTurnRight
	ActBoost
	ActJump
	actCount
)

type press struct {
	first, last time.Time
}

// KeyState turns a stream of presses into held actions.
type KeyState struct {
	presses [actCount]press
}

// Press records a press of a at now.
func (k *KeyState) Press(a Action, now time.Time) {
	p := &k.presses[a]
	if p.last.IsZero() || now.Sub(p.last) > k.window(a) {
		p.first = now
	}
	p.last = now
}

func (k *KeyState) window(a Action) time.Duration {
	p := k.presses[a]
	if p.last.Sub(p.first) < 50*time.Millisecond {
		return firstHold
	}
	return repeatHold
}

// Held reports whether a is still considered down at now.
func (k *KeyState) Held(a Action, now time.Time) bool {
	p := k.presses[a]
	if p.last.IsZero() {
		return false
	}
	return now.Sub(p.last) <= k.window(a)
}

// Release forgets a, for keys with an opposite that should cancel it.
func (k *KeyState) Release(a Action) {
	k.presses[a] = press{}
}
