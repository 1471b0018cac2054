package game

import (
	"fmt"
	"math"
	"math/rand"
)

// EnemyKind defines different types of enemies
type EnemyKind string

const (
	EnemySmall  EnemyKind = "small"  // Fast and fragile
	EnemyMedium EnemyKind = "medium" // The common grunt
	EnemyLarge  EnemyKind = "large"  // Slow, worth the most
)

// EnemyKindConfig holds configuration for each enemy kind
type EnemyKindConfig struct {
	Kind   EnemyKind
	Width  float64
	Height float64
	Speed  float64
	Points int
}

// GetEnemyKindConfig returns configuration for an enemy kind.
// The kind set is closed, so an unknown kind is a programming error and panics.
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemySmall:
		return EnemyKindConfig{Kind: kind, Width: 32, Height: 32, Speed: 6, Points: 2}
	case EnemyMedium:
		return EnemyKindConfig{Kind: kind, Width: 40, Height: 40, Speed: 4, Points: 1}
	case EnemyLarge:
		return EnemyKindConfig{Kind: kind, Width: 52, Height: 52, Speed: 2, Points: 3}
	default:
		panic(fmt.Sprintf("game: unknown enemy kind %q", kind))
	}
}

// Enemy is a regular descending enemy
type Enemy struct {
	Kind   EnemyKind
	Rect   Rect
	Speed  float64
	Points int

	// FireTimer counts up to Config.EnemyFireInterval
	FireTimer int
}

// NewEnemy creates an enemy just above the screen at a random x
func NewEnemy(kind EnemyKind, screenWidth int, rng *rand.Rand) *Enemy {
	kc := GetEnemyKindConfig(kind)
	maxX := screenWidth - int(kc.Width)
	if maxX < 0 {
		maxX = 0
	}
	return &Enemy{
		Kind:      kind,
		Rect:      Rect{X: float64(rng.Intn(maxX + 1)), Y: -kc.Height, W: kc.Width, H: kc.Height},
		Speed:     kc.Speed,
		Points:    kc.Points,
		FireTimer: rng.Intn(51),
	}
}

// Update moves the enemy down and advances its fire timer
func (e *Enemy) Update() {
	e.Rect.Y += e.Speed
	e.FireTimer++
}

// OffScreen reports whether the enemy fell past the bottom
func (e *Enemy) OffScreen(screenHeight float64) bool {
	return e.Rect.Top() > screenHeight
}

// TryFire returns a straight-down bullet once the fire timer reaches interval
func (e *Enemy) TryFire(interval int, speed float64) *EnemyBullet {
	if e.FireTimer < interval {
		return nil
	}
	e.FireTimer = 0
	cx, _ := e.Rect.Center()
	return NewEnemyBullet(cx, e.Rect.Bottom(), 0, speed, false)
}

const (
	bossWidth   = 120
	bossHeight  = 80
	bossTargetY = 60
)

// Boss is the end-of-level enemy. At most one exists per run.
type Boss struct {
	Rect Rect

	Level int
	MaxHP int
	HP    int

	// Entering is true while the boss descends to its patrol line
	Entering bool
	TargetY  float64

	Speed     float64
	Direction float64

	FireTimer    int
	PatternTimer int

	// AttackPhase advances on every fire event and selects the pattern branch
	AttackPhase int

	Points int

	screenWidth float64
}

// NewBoss creates a level-scaled boss above the screen
func NewBoss(level int, cfg Config) *Boss {
	sw := float64(cfg.ScreenWidth)
	maxHP := 25 + level*8
	return &Boss{
		Rect:        Rect{X: math.Floor((sw - bossWidth) / 2), Y: -bossHeight, W: bossWidth, H: bossHeight},
		Level:       level,
		MaxHP:       maxHP,
		HP:          maxHP,
		Entering:    true,
		TargetY:     bossTargetY,
		Speed:       2 + float64(level)*0.3,
		Direction:   1,
		Points:      20 + level*5,
		screenWidth: sw,
	}
}

// Update runs the entry descent, then the patrol with sway and edge reversal
func (b *Boss) Update() {
	if b.Entering {
		b.Rect.Y += 2
		if b.Rect.Y >= b.TargetY {
			b.Rect.Y = b.TargetY
			b.Entering = false
		}
		return
	}

	b.FireTimer++
	b.PatternTimer++

	sway := math.Sin(float64(b.PatternTimer)/60) * 1.5
	b.Rect.X += b.Speed*b.Direction + sway
	if b.Rect.Right() >= b.screenWidth || b.Rect.Left() <= 0 {
		b.Direction = -b.Direction
	}
	b.Rect.X = clamp(b.Rect.X, 0, b.screenWidth-b.Rect.W)
}

// ShouldFire reports whether the boss is patrolling and its fire timer reached interval
func (b *Boss) ShouldFire(interval int) bool {
	return !b.Entering && b.FireTimer >= interval
}

// ResetFireTimer restarts the fire countdown after a volley
func (b *Boss) ResetFireTimer() {
	b.FireTimer = 0
}

// TakeDamage removes HP, never below zero
func (b *Boss) TakeDamage(amount int) {
	b.HP -= amount
	if b.HP < 0 {
		b.HP = 0
	}
}

// Dead reports whether HP is exhausted
func (b *Boss) Dead() bool {
	return b.HP <= 0
}

// HPRatio is HP over MaxHP
func (b *Boss) HPRatio() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}

// PickEnemyKind draws a kind with the medium/small/large weights
func PickEnemyKind(rng *rand.Rand) EnemyKind {
	r := rng.Float64()
	switch {
	case r < 0.40:
		return EnemyMedium
	case r < 0.75:
		return EnemySmall
	default:
		return EnemyLarge
	}
}
