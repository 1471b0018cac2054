package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a Config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// FPS is the fixed tick rate
	FPS int `yaml:"fps"`

	// PlayerLives is the starting life count per player
	PlayerLives int `yaml:"player_lives"`

	// PlayerMaxHP is how many life slots the HUD shows
	PlayerMaxHP int `yaml:"player_max_hp"`

	// FireCooldown is ticks between shots per player
	FireCooldown int `yaml:"fire_cooldown"`

	// BulletSpeed is the speed of player bullets in pixels per tick
	BulletSpeed float64 `yaml:"bullet_speed"`

	// MissileCooldown is ticks between missiles per player
	MissileCooldown int `yaml:"missile_cooldown"`

	// MissileSpeed is the upward missile speed in pixels per tick
	MissileSpeed float64 `yaml:"missile_speed"`

	// MissileCeiling is the Y a missile must pass before it detonates
	MissileCeiling float64 `yaml:"missile_ceiling"`

	// MissileRadius is the splash radius of a missile detonation
	MissileRadius float64 `yaml:"missile_radius"`

	// MissileBossDamage is the HP a detonation removes from a boss in range
	MissileBossDamage int `yaml:"missile_boss_damage"`

	// InitialSpawnInterval is ticks between regular enemy spawns at score 0
	InitialSpawnInterval int `yaml:"initial_spawn_interval"`

	// MinSpawnInterval is the floor for the spawn interval
	MinSpawnInterval int `yaml:"min_spawn_interval"`

	// DifficultyScoreStep is how many points shave 4 ticks off the spawn interval
	DifficultyScoreStep int `yaml:"difficulty_score_step"`

	// FormationInterval is the minimum ticks between formations
	FormationInterval int `yaml:"formation_interval"`

	// FormationJitter is the random extra ticks added to FormationInterval
	FormationJitter int `yaml:"formation_jitter"`

	// EnemyFireInterval is ticks between shots of a single enemy
	EnemyFireInterval int `yaml:"enemy_fire_interval"`

	// EnemyBulletSpeed is the downward speed of regular enemy bullets
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`

	// EnemyBulletCullX is the x past which enemy bullets are dropped
	EnemyBulletCullX float64 `yaml:"enemy_bullet_cull_x"`

	// ComboWindow is ticks a combo survives without a kill
	ComboWindow int `yaml:"combo_window"`

	// ComboMax caps the score multiplier
	ComboMax int `yaml:"combo_max"`

	// InvincibilityFrames is ticks of invincibility after losing a life
	InvincibilityFrames int `yaml:"invincibility_frames"`

	// ShieldDuration is ticks a shield pickup lasts
	ShieldDuration int `yaml:"shield_duration"`

	// DoubleShotUnlock is the kill count that upgrades a normal gun to double
	DoubleShotUnlock int `yaml:"double_shot_unlock"`

	// BossScoreThreshold is the per-level score that summons a boss
	BossScoreThreshold int `yaml:"boss_score_threshold"`

	// BossFireInterval is the base ticks between boss volleys
	BossFireInterval int `yaml:"boss_fire_interval"`

	// BossBulletSpeed is the base boss bullet speed
	BossBulletSpeed float64 `yaml:"boss_bullet_speed"`

	// BossWarningTicks is the length of the warning before a boss enters
	BossWarningTicks int `yaml:"boss_warning_ticks"`

	// LevelClearTicks is the pause after a boss dies before the next level
	LevelClearTicks int `yaml:"level_clear_ticks"`

	// PowerUpDropChance is the chance a killed enemy drops a power-up
	PowerUpDropChance float64 `yaml:"powerup_drop_chance"`

	// PowerUpSpeed is the fall speed of power-ups
	PowerUpSpeed float64 `yaml:"powerup_speed"`

	// PowerUpKinds is the set a dropped power-up is drawn from
	PowerUpKinds []PowerUpKind `yaml:"powerup_kinds"`

	// LeaderboardSize caps the stored top scores
	LeaderboardSize int `yaml:"leaderboard_size"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:          480,
		ScreenHeight:         720,
		FPS:                  60,
		PlayerLives:          3,
		PlayerMaxHP:          5,
		FireCooldown:         8,
		BulletSpeed:          13,
		MissileCooldown:      180,
		MissileSpeed:         14,
		MissileCeiling:       -30,
		MissileRadius:        110,
		MissileBossDamage:    5,
		InitialSpawnInterval: 60,
		MinSpawnInterval:     18,
		DifficultyScoreStep:  20,
		FormationInterval:    400,
		FormationJitter:      200,
		EnemyFireInterval:    120,
		EnemyBulletSpeed:     5,
		EnemyBulletCullX:     600, // fixed reference width, not ScreenWidth
		ComboWindow:          90,
		ComboMax:             8,
		InvincibilityFrames:  90,
		ShieldDuration:       600,
		DoubleShotUnlock:     30,
		BossScoreThreshold:   80,
		BossFireInterval:     60,
		BossBulletSpeed:      4,
		BossWarningTicks:     120,
		LevelClearTicks:      90,
		PowerUpDropChance:    0.12,
		PowerUpSpeed:         2,
		PowerUpKinds:         []PowerUpKind{PowerUpBullet, PowerUpLife, PowerUpMorph, PowerUpShield},
		LeaderboardSize:      10,
	}
}

// LoadConfig overlays a YAML file on DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first setting that would break the simulation
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"screen_width", float64(c.ScreenWidth)},
		{"screen_height", float64(c.ScreenHeight)},
		{"fps", float64(c.FPS)},
		{"player_lives", float64(c.PlayerLives)},
		{"bullet_speed", c.BulletSpeed},
		{"missile_speed", c.MissileSpeed},
		{"missile_radius", c.MissileRadius},
		{"min_spawn_interval", float64(c.MinSpawnInterval)},
		{"difficulty_score_step", float64(c.DifficultyScoreStep)},
		{"formation_interval", float64(c.FormationInterval)},
		{"enemy_fire_interval", float64(c.EnemyFireInterval)},
		{"combo_window", float64(c.ComboWindow)},
		{"combo_max", float64(c.ComboMax)},
		{"boss_score_threshold", float64(c.BossScoreThreshold)},
		{"boss_bullet_speed", c.BossBulletSpeed},
		{"level_clear_ticks", float64(c.LevelClearTicks)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.InitialSpawnInterval < c.MinSpawnInterval {
		return fmt.Errorf("%w: initial_spawn_interval %d below min_spawn_interval %d",
			ErrInvalidConfig, c.InitialSpawnInterval, c.MinSpawnInterval)
	}
	if c.FormationJitter < 0 || c.InvincibilityFrames < 0 ||
		c.FireCooldown < 0 || c.MissileCooldown < 0 || c.BossWarningTicks < 0 {
		return fmt.Errorf("%w: tick counts must not be negative", ErrInvalidConfig)
	}
	if c.PowerUpDropChance < 0 || c.PowerUpDropChance > 1 {
		return fmt.Errorf("%w: powerup_drop_chance %v outside [0,1]", ErrInvalidConfig, c.PowerUpDropChance)
	}
	if c.PowerUpDropChance > 0 && len(c.PowerUpKinds) == 0 {
		return fmt.Errorf("%w: powerup_kinds is empty", ErrInvalidConfig)
	}
	for _, k := range c.PowerUpKinds {
		if !k.valid() {
			return fmt.Errorf("%w: unknown power-up kind %q", ErrInvalidConfig, k)
		}
	}
	return nil
}
