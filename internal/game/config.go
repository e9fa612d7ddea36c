package game

// Ground plane layout.
const (
	GroundY       = 1.0 // resting height of the head centre
	PlayerRadius  = 0.5
	EnemyBaseY    = 1.0
	QuadCapacity  = 16
	QuadMaxDepth  = 8
	SpawnMinDist  = 8.0 // enemies never spawn closer than this to the head
	PowerUpMinGap = 8.0 // power-ups avoid spawning this close to each other
)

// Settings holds every gameplay tunable. Zero values are not meaningful;
// start from DefaultSettings.
type Settings struct {
	// Player.
	BaseSpeed        float64 `mapstructure:"base_speed"`
	MaxHealth        int     `mapstructure:"max_health"`
	DamageCooldown   float64 `mapstructure:"damage_cooldown"`
	Knockback        float64 `mapstructure:"knockback"`
	FlashTime        float64 `mapstructure:"flash_time"`
	TurnRate         float64 `mapstructure:"turn_rate"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
	GrowthSpeedGain  float64 `mapstructure:"growth_speed_gain"`
	BoostMultiplier  float64 `mapstructure:"boost_multiplier"`
	SpeedPowerUp     float64 `mapstructure:"speed_powerup"`
	MaxSpeedFactor   float64 `mapstructure:"max_speed_factor"`
	JumpVelocity     float64 `mapstructure:"jump_velocity"`
	Gravity          float64 `mapstructure:"gravity"`
	ProbeDistance    float64 `mapstructure:"probe_distance"`

	// Body trail.
	SegmentSpacing int     `mapstructure:"segment_spacing"`
	HistoryBuffer  int     `mapstructure:"history_buffer"`
	TrailSmoothing float64 `mapstructure:"trail_smoothing"`
	SampleInterval float64 `mapstructure:"sample_interval"`

	// Scoring.
	ComboTimeout  float64 `mapstructure:"combo_timeout"`
	ComboBonus    bool    `mapstructure:"combo_bonus"`
	ComboMaxBonus int     `mapstructure:"combo_max_bonus"`

	// Enemies.
	InitialEnemies     int     `mapstructure:"initial_enemies"`
	EnemyCap           int     `mapstructure:"enemy_cap"`
	EnemySpawnInterval float64 `mapstructure:"enemy_spawn_interval"`
	SeekerChance       float64 `mapstructure:"seeker_chance"`
	DetectionRange     float64 `mapstructure:"detection_range"`

	// Power-ups.
	InitialPowerUps int     `mapstructure:"initial_powerups"`
	PowerUpCap      int     `mapstructure:"powerup_cap"`
	PowerUpInterval float64 `mapstructure:"powerup_interval"`

	// City.
	HalfExtent          float64 `mapstructure:"half_extent"`
	Margin              float64 `mapstructure:"margin"`
	GridStep            float64 `mapstructure:"grid_step"`
	SkipChance          float64 `mapstructure:"skip_chance"`
	CoreRadius          float64 `mapstructure:"core_radius"`
	SpawnClearance      float64 `mapstructure:"spawn_clearance"`
	MinSeparation       float64 `mapstructure:"min_separation"`
	MaxAttempts         int     `mapstructure:"max_attempts"`
	FillerCount         int     `mapstructure:"filler_count"`
	OverlapPasses       int     `mapstructure:"overlap_passes"`
	ObstacleCount       int     `mapstructure:"obstacle_count"`
	ObstacleClearance   float64 `mapstructure:"obstacle_clearance"`
	CollapsibleFraction float64 `mapstructure:"collapsible_fraction"`
	CollapseChance      float64 `mapstructure:"collapse_chance"`
	CollapseTime        float64 `mapstructure:"collapse_time"`
	BridgeCount         int     `mapstructure:"bridge_count"`
	BridgeCrossTime     float64 `mapstructure:"bridge_cross_time"`

	// Particles.
	MaxParticles int `mapstructure:"max_particles"`
}

func DefaultSettings() Settings {
	return Settings{
		BaseSpeed:        8,
		MaxHealth:        3,
		DamageCooldown:   1.0,
		Knockback:        2,
		FlashTime:        0.2,
		TurnRate:         2.6,
		MouseSensitivity: 0.004,
		GrowthSpeedGain:  0.05,
		BoostMultiplier:  1.5,
		SpeedPowerUp:     1.5,
		MaxSpeedFactor:   2,
		JumpVelocity:     5,
		Gravity:          9.8,
		ProbeDistance:    1.0,

		SegmentSpacing: 3,
		HistoryBuffer:  3,
		TrailSmoothing: 5,
		SampleInterval: 0.05,

		ComboTimeout:  3,
		ComboBonus:    true,
		ComboMaxBonus: 4,

		InitialEnemies:     8,
		EnemyCap:           12,
		EnemySpawnInterval: 6,
		SeekerChance:       0.15,
		DetectionRange:     15,

		InitialPowerUps: 2,
		PowerUpCap:      3,
		PowerUpInterval: 8,

		HalfExtent:          60,
		Margin:              4,
		GridStep:            10,
		SkipChance:          0.3,
		CoreRadius:          25,
		SpawnClearance:      7,
		MinSeparation:       8,
		MaxAttempts:         12,
		FillerCount:         8,
		OverlapPasses:       8,
		ObstacleCount:       24,
		ObstacleClearance:   4,
		CollapsibleFraction: 0.15,
		CollapseChance:      0.01,
		CollapseTime:        1.5,
		BridgeCount:         2,
		BridgeCrossTime:     2.1,

		MaxParticles: 2048,
	}
}

// WanderLimit is the |x|,|z| bound enemies turn back at.
func (s Settings) WanderLimit() float64 {
	return s.HalfExtent - 1
}
