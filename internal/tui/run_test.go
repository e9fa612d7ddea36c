package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// busyScreen always has another key press waiting.
type busyScreen struct{}

func (busyScreen) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
}

// finishedScreen reports a closed screen.
type finishedScreen struct{}

func (finishedScreen) PollEvent() tcell.Event { return nil }

func TestPollEventsStopsWhenDone(t *testing.T) {
	events := make(chan tcell.Event) // never read
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pollEvents(busyScreen{}, events, done)
		close(stopped)
	}()

	close(done)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poller still blocked after done closed")
	}
}

func TestPollEventsForwardsUntilScreenCloses(t *testing.T) {
	events := make(chan tcell.Event, 1)
	stopped := make(chan struct{})
	go func() {
		pollEvents(finishedScreen{}, events, make(chan struct{}))
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on a closed screen")
	}
	if len(events) != 0 {
		t.Fatalf("%d events forwarded from a closed screen", len(events))
	}
}
