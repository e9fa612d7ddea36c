package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Span is an inclusive [min, max] range sampled uniformly.
type Span [2]float64

func (s Span) Pick(r *Rand) float64 { return r.RangeF(s[0], s[1]) }

// BuildingArchetype describes one family of building sizes.
type BuildingArchetype struct {
	Name   string `yaml:"name"`
	Width  Span   `yaml:"width"`
	Height Span   `yaml:"height"`
	Depth  Span   `yaml:"depth"`
	Color  RGB    `yaml:"color"`
}

// ObstacleType is a piece of street furniture.
type ObstacleType struct {
	Kind  string `yaml:"kind"`
	Size  Vec3   `yaml:"size"`
	Color RGB    `yaml:"color"`
}

// Tables holds every data-driven spawn table.
type Tables struct {
	Enemies   []EnemyType `yaml:"enemies"`
	Buildings struct {
		Tall   []BuildingArchetype `yaml:"tall"`
		Short  []BuildingArchetype `yaml:"short"`
		Bridge BuildingArchetype   `yaml:"bridge"`
	} `yaml:"buildings"`
	Obstacles []ObstacleType `yaml:"obstacles"`
	PowerUps  []PowerUpType  `yaml:"powerups"`
}

// DefaultTables parses the embedded tables.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTables)
}

// MustDefaultTables is DefaultTables for callers that cannot recover.
func MustDefaultTables() *Tables {
	t, err := DefaultTables()
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTables decodes and validates a YAML table document.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if len(t.Enemies) == 0 {
		return fmt.Errorf("tables: no enemy types")
	}
	for _, e := range t.Enemies {
		switch e.Behavior {
		case BehaviorPatrol, BehaviorGuard, BehaviorChase, BehaviorWander, BehaviorSeek:
		default:
			return fmt.Errorf("tables: enemy %q has unknown behavior %q", e.Kind, e.Behavior)
		}
		if e.Speed <= 0 || e.Scale <= 0 {
			return fmt.Errorf("tables: enemy %q needs positive speed and scale", e.Kind)
		}
	}
	if len(t.Buildings.Tall) == 0 || len(t.Buildings.Short) == 0 {
		return fmt.Errorf("tables: need tall and short building archetypes")
	}
	for _, p := range t.PowerUps {
		switch p.Kind {
		case PowerUpSpeed, PowerUpInvisibility, PowerUpJump, PowerUpHealth:
		default:
			return fmt.Errorf("tables: unknown power-up %q", p.Kind)
		}
	}
	return nil
}

// EnemyType returns the table row for kind.
func (t *Tables) EnemyType(kind EnemyKind) (EnemyType, bool) {
	for _, e := range t.Enemies {
		if e.Kind == kind {
			return e, true
		}
	}
	return EnemyType{}, false
}

// PowerUpType returns the table row for kind.
func (t *Tables) PowerUpType(kind PowerUpKind) (PowerUpType, bool) {
	for _, p := range t.PowerUps {
		if p.Kind == kind {
			return p, true
		}
	}
	return PowerUpType{}, false
}
