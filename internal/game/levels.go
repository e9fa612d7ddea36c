package game

import "fmt"

// Difficulty names a preset that scales enemy pressure and player health.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type DifficultyConfig struct {
	InitialEnemies     int
	EnemyCap           int
	EnemySpawnInterval float64
	SeekerChance       float64
	InitialPowerUps    int
	PowerUpCap         int
	MaxHealth          int
	CollapseChance     float64
}

// GetDifficultyConfig returns the preset for name.
func GetDifficultyConfig(name Difficulty) (DifficultyConfig, error) {
	switch name {
	case DifficultyEasy:
		// Slow spawns, almost no seekers, an extra heart.
		return DifficultyConfig{
			InitialEnemies: 6, EnemyCap: 9, EnemySpawnInterval: 8, SeekerChance: 0.05,
			InitialPowerUps: 3, PowerUpCap: 4, MaxHealth: 4, CollapseChance: 0.005,
		}, nil
	case DifficultyNormal, "":
		return DifficultyConfig{
			InitialEnemies: 8, EnemyCap: 12, EnemySpawnInterval: 6, SeekerChance: 0.15,
			InitialPowerUps: 2, PowerUpCap: 3, MaxHealth: 3, CollapseChance: 0.01,
		}, nil
	case DifficultyHard:
		// Crowded streets, frequent seekers, buildings come down more often.
		return DifficultyConfig{
			InitialEnemies: 12, EnemyCap: 18, EnemySpawnInterval: 4, SeekerChance: 0.3,
			InitialPowerUps: 1, PowerUpCap: 2, MaxHealth: 2, CollapseChance: 0.025,
		}, nil
	default:
		return DifficultyConfig{}, fmt.Errorf("unknown difficulty %q", name)
	}
}

// Apply overlays the preset onto s.
func (d DifficultyConfig) Apply(s Settings) Settings {
	s.InitialEnemies = d.InitialEnemies
	s.EnemyCap = d.EnemyCap
	s.EnemySpawnInterval = d.EnemySpawnInterval
	s.SeekerChance = d.SeekerChance
	s.InitialPowerUps = d.InitialPowerUps
	s.PowerUpCap = d.PowerUpCap
	s.MaxHealth = d.MaxHealth
	s.CollapseChance = d.CollapseChance
	return s
}
