package game

// EventKind identifies what happened during a tick
type EventKind int

const (
	EventEnemyDestroyed EventKind = iota
	EventBulletSpark
	EventBossHit
	EventBossDestroyed
	EventBossWarning
	EventBossSpawned
	EventLevelCleared
	EventMissileLaunched
	EventMissileExploded
	EventPowerUpDropped
	EventPowerUpCollected
	EventShieldAbsorbed
	EventPlayerHit
	EventPlayerDown
	EventGameOver
)

var eventNames = [...]string{
	EventEnemyDestroyed:   "enemy_destroyed",
	EventBulletSpark:      "bullet_spark",
	EventBossHit:          "boss_hit",
	EventBossDestroyed:    "boss_destroyed",
	EventBossWarning:      "boss_warning",
	EventBossSpawned:      "boss_spawned",
	EventLevelCleared:     "level_cleared",
	EventMissileLaunched:  "missile_launched",
	EventMissileExploded:  "missile_exploded",
	EventPowerUpDropped:   "powerup_dropped",
	EventPowerUpCollected: "powerup_collected",
	EventShieldAbsorbed:   "shield_absorbed",
	EventPlayerHit:        "player_hit",
	EventPlayerDown:       "player_down",
	EventGameOver:         "game_over",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// KillCause says what destroyed an enemy
type KillCause string

const (
	CauseBullet  KillCause = "bullet"
	CauseMissile KillCause = "missile"
	CauseRam     KillCause = "ram"
)

// Event is emitted by Run.Tick for the presentation layer
type Event struct {
	Kind EventKind

	// X, Y is where it happened
	X, Y float64

	// Player is the index of the player involved, or -1
	Player int

	// Points awarded and the multiplier they were scored with
	Points     int
	Multiplier int

	// Cause of an enemy kill
	Cause KillCause

	// Enemy kind of a destroyed enemy
	Enemy EnemyKind

	// PowerUp kind dropped or collected
	PowerUp PowerUpKind

	// Label describes a pickup effect, e.g. the new weapon
	Label string

	// Radius of a missile explosion
	Radius float64

	// Level the event belongs to
	Level int
}

// Shake returns the screen shake intensity and duration in ticks the event calls for
func (e Event) Shake() (intensity, duration int) {
	switch e.Kind {
	case EventMissileExploded:
		return 8, 18
	case EventBossSpawned:
		return 6, 15
	case EventBossDestroyed:
		return 12, 25
	case EventPlayerHit, EventPlayerDown:
		return 6, 12
	case EventShieldAbsorbed:
		return 3, 6
	case EventBossHit:
		if e.Cause == CauseMissile {
			return 6, 12
		}
	}
	return 0, 0
}
