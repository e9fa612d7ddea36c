package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestEventBusDeliversByType(t *testing.T) {
	eb := NewEventBus()
	var eaten, all []EventType
	eb.Subscribe(EventEnemyEaten, func(e Event) { eaten = append(eaten, e.Type) })
	eb.SubscribeAll(func(e Event) { all = append(all, e.Type) })

	eb.Emit(Event{Type: EventEnemyEaten})
	eb.Emit(Event{Type: EventGameOver})
	eb.Emit(Event{Type: EventRestart})

	if len(eaten) != 1 {
		t.Fatalf("eaten handler saw %v", eaten)
	}
	if len(all) != 3 || all[1] != EventGameOver {
		t.Fatalf("catch-all saw %v", all)
	}
}

func TestEventTypeString(t *testing.T) {
	for ty := EventType(0); ty < eventTypeCount; ty++ {
		if s := ty.String(); s == "" || s == "unknown" {
			t.Errorf("event %d has no name", ty)
		}
	}
	if EventType(-1).String() != "unknown" || eventTypeCount.String() != "unknown" {
		t.Error("out of range event named")
	}
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	eb := NewEventBus()
	LogEvents(eb)
	eb.Emit(Event{Type: EventEnemyEaten, Kind: "runner", Value: 4})
	eb.Emit(Event{Type: EventGameOver, Value: 12})

	out := buf.String()
	if !strings.Contains(out, "enemy eaten (runner) value=4") || !strings.Contains(out, "game over value=12") {
		t.Fatalf("log output %q", out)
	}
}
