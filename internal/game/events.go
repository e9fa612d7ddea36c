package game

import "log"

type EventType int

const (
	EventEnemyEaten EventType = iota
	EventPlayerDamaged
	EventPowerUpCollected
	EventPowerUpExpired
	EventBuildingCollapsed
	EventSeekerHit
	EventGameOver
	EventRestart
	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventEnemyEaten:        "enemy eaten",
	EventPlayerDamaged:     "player damaged",
	EventPowerUpCollected:  "power-up collected",
	EventPowerUpExpired:    "power-up expired",
	EventBuildingCollapsed: "building collapsed",
	EventSeekerHit:         "seeker hit",
	EventGameOver:          "game over",
	EventRestart:           "restart",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// Event is published synchronously on the bus during Update.
type Event struct {
	Type  EventType
	Pos   Vec3
	ID    EntityID
	Kind  string // enemy kind, power-up kind or building archetype
	Value int    // generic payload (e.g. points gained, health left)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventType(0); t < eventTypeCount; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// LogEvents writes every event to the standard logger.
func LogEvents(eb *EventBus) {
	eb.SubscribeAll(func(e Event) {
		if e.Kind != "" {
			log.Printf("event: %s (%s) value=%d at %.1f,%.1f", e.Type, e.Kind, e.Value, e.Pos[0], e.Pos[2])
			return
		}
		log.Printf("event: %s value=%d at %.1f,%.1f", e.Type, e.Value, e.Pos[0], e.Pos[2])
	})
}
